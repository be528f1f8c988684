package theme

import (
	"sort"
	"sync"
)

// registry holds every registered theme. The first registration becomes the
// active default, so importing this package is enough to get usable colors.
type registry struct {
	mu     sync.RWMutex
	themes map[string]Theme
	active string
}

var reg = registry{themes: make(map[string]Theme)}

// sortedNames must be called with the lock held.
func (r *registry) sortedNames() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterTheme adds a theme under name. The first registered theme becomes
// the default.
func RegisterTheme(name string, t Theme) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.themes[name] = t
	if reg.active == "" {
		reg.active = name
	}
}

// SetTheme activates a registered theme by name and reports whether it was
// found.
func SetTheme(name string) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.themes[name]; !ok {
		return false
	}
	reg.active = name
	return true
}

// Current returns the active theme.
func Current() Theme {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.themes[reg.active]
}

// CurrentName returns the active theme's name.
func CurrentName() string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.active
}

// Available returns all registered theme names, sorted.
func Available() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.sortedNames()
}

// CycleTheme activates the next theme in sorted name order and returns its
// name.
func CycleTheme() string {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	names := reg.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := names[0]
	for i, name := range names {
		if name == reg.active {
			next = names[(i+1)%len(names)]
			break
		}
	}
	reg.active = next
	return next
}
