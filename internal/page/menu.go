package page

const (
	ClassActive   = "active"
	ClassNoScroll = "no-scroll"
)

// Key is a keyboard input the menu reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeySpace
	KeyEscape
)

// Menu is the hamburger toggle. It owns two flags: the overlay's active
// class and the body's scroll lock.
type Menu struct {
	Overlay ClassList
	Body    ClassList
}

// Toggle opens a closed menu and closes an open one.
func (m *Menu) Toggle() {
	if m.Overlay.Toggle(ClassActive) {
		m.Body.Add(ClassNoScroll)
	} else {
		m.Body.Remove(ClassNoScroll)
	}
}

// Close shuts the menu if it is open.
func (m *Menu) Close() {
	m.Overlay.Remove(ClassActive)
	m.Body.Remove(ClassNoScroll)
}

// HandleKey reacts to a key pressed while the hamburger has focus. Enter
// and Space toggle, Escape closes. Reports whether the key was consumed.
func (m *Menu) HandleKey(k Key) bool {
	switch k {
	case KeyEnter, KeySpace:
		m.Toggle()
		return true
	case KeyEscape:
		if m.Open() {
			m.Close()
			return true
		}
	}
	return false
}

func (m *Menu) Open() bool {
	return m.Overlay.Has(ClassActive)
}

func (m *Menu) ScrollLocked() bool {
	return m.Body.Has(ClassNoScroll)
}
