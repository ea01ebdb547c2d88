package style

import "sync"

// Process-wide named style registration. Register and Lookup may be
// interleaved from multiple goroutines; registered styles themselves still
// follow the read-only-while-shared rule.
var registry = struct {
	sync.RWMutex
	m map[string]*Style
}{m: make(map[string]*Style)}

// Register stores the style under its name, replacing any previous entry.
func Register(s *Style) {
	registry.Lock()
	defer registry.Unlock()
	registry.m[s.Name()] = s
}

// Lookup resolves a registered style by name.
func Lookup(name string) (*Style, bool) {
	registry.RLock()
	defer registry.RUnlock()
	s, ok := registry.m[name]
	return s, ok
}

// RegisteredNames returns names of all registered styles, unordered.
func RegisteredNames() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.m))
	for n := range registry.m {
		names = append(names, n)
	}
	return names
}
