package page

import (
	"sort"
	"strings"
)

// ClassList is the set of class flags on one element.
type ClassList struct {
	set map[string]struct{}
}

func (c *ClassList) Add(name string) {
	if c.set == nil {
		c.set = make(map[string]struct{})
	}
	c.set[name] = struct{}{}
}

func (c *ClassList) Remove(name string) {
	delete(c.set, name)
}

// Toggle flips name and reports whether it is now present.
func (c *ClassList) Toggle(name string) bool {
	if c.Has(name) {
		c.Remove(name)
		return false
	}
	c.Add(name)
	return true
}

func (c *ClassList) Has(name string) bool {
	_, ok := c.set[name]
	return ok
}

// String renders the classes space separated, sorted.
func (c *ClassList) String() string {
	names := make([]string, 0, len(c.set))
	for n := range c.set {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
