package render

import (
	"fmt"
	"time"

	"github.com/iburimskiy/shape-field/internal/config"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// HamburgerHit reports whether (x, y) is on the menu button.
func HamburgerHit(x, y int) bool {
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}

const (
	menuEntryTop    = 90
	menuEntryHeight = 40
	menuEntryInset  = 32
)

// MenuEntryAt returns the index of the menu entry under (x, y) for a
// fully open overlay in a window of the given width, or -1.
func MenuEntryAt(x, y, width, entries int) int {
	if x < width-config.MenuWidth {
		return -1
	}
	i := (y - menuEntryTop) / menuEntryHeight
	if y < menuEntryTop || i >= entries {
		return -1
	}
	return i
}
