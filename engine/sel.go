package engine

import "sync"

// Sel is an interned selector handle. Sel 0 is reserved and always invalid.
type Sel uint32

var selTable = struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]Sel
}{
	byName: make(map[string]Sel),
}

// RegisterSelector interns a selector by name and returns its handle.
// Registration is idempotent: the same name always yields the same Sel.
func RegisterSelector(name string) Sel {
	selTable.mu.RLock()
	s, ok := selTable.byName[name]
	selTable.mu.RUnlock()
	if ok {
		return s
	}

	selTable.mu.Lock()
	defer selTable.mu.Unlock()

	if s, ok := selTable.byName[name]; ok {
		return s
	}
	selTable.names = append(selTable.names, name)
	s = Sel(len(selTable.names))
	selTable.byName[name] = s
	return s
}

// Name returns the selector's registered name, or "" for an invalid Sel.
func (s Sel) Name() string {
	if s == 0 {
		return ""
	}
	selTable.mu.RLock()
	defer selTable.mu.RUnlock()
	idx := int(s) - 1
	if idx >= len(selTable.names) {
		return ""
	}
	return selTable.names[idx]
}
