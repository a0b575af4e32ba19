package annot

import "sync"

// RefSet interns reference sequence (e.g. chromosome) names.
//
// Intern returns one canonical string per distinct name, so the many
// locations annotated on the same chromosome share a single backing
// string instead of each parse allocating its own copy. The canonical
// strings satisfy the comparable refid parameter of the location types
// directly. A RefSet is safe for concurrent use; at most one entry ever
// exists per distinct name.
type RefSet struct {
	mu    sync.Mutex
	names map[string]string
}

// NewRefSet creates an empty interning table.
func NewRefSet() *RefSet {
	return &RefSet{names: make(map[string]string)}
}

// Intern returns the canonical string for name, storing it on first
// use.
func (r *RefSet) Intern(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if canon, ok := r.names[name]; ok {
		return canon
	}
	canon := string([]byte(name)) // detach from any larger backing array
	r.names[name] = canon
	return canon
}

// Len is the number of distinct interned names.
func (r *RefSet) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}
