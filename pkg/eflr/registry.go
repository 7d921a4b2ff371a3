package eflr

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
)

// Registry is the file-scoped replacement for the source implementation's
// class-level mutable `_instance_dict` (§9): it owns every Set created
// during one write, keyed by (set type, set name), and is discarded and
// rebuilt (via Reset) between writes so no state survives from one file to
// the next.
type Registry struct {
	sets  map[string]*Set
	order []*Set
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sets: map[string]*Set{}}
}

func key(setType, name string) string {
	return setType + "\x00" + name
}

// AddSet registers a newly created Set, raising an error if a Set with the
// same (type, name) pair already exists — the direct analogue of the source
// implementation's EFLRSetsDict.add_set.
func (r *Registry) AddSet(s *Set) error {
	k := key(s.setType, s.name)
	if _, exists := r.sets[k]; exists {
		return fmt.Errorf("eflr: a %s set named %q was already added to this file", s.setType, s.name)
	}
	r.sets[k] = s
	r.order = append(r.order, s)
	return nil
}

// GetOrCreateSet returns the existing Set for (setType, name), creating and
// registering it with the given template if it does not yet exist — the
// direct analogue of EFLRSetsDict.get_or_make_set.
func (r *Registry) GetOrCreateSet(setType, name string, template []attribute.Spec) *Set {
	k := key(setType, name)
	if s, ok := r.sets[k]; ok {
		return s
	}
	s := NewSet(setType, name, template)
	r.sets[k] = s
	r.order = append(r.order, s)
	return s
}

// Lookup returns the Set for (setType, name), and false if none exists yet.
func (r *Registry) Lookup(setType, name string) (*Set, bool) {
	s, ok := r.sets[key(setType, name)]
	return s, ok
}

// Sets returns every registered Set in registration order, the order their
// EFLRs are written to the file.
func (r *Registry) Sets() []*Set {
	out := make([]*Set, len(r.order))
	copy(out, r.order)
	return out
}

// Reset clears every registered Set, so the Registry can be reused for a
// subsequent write without carrying state forward (§5, §9).
func (r *Registry) Reset() {
	r.sets = map[string]*Set{}
	r.order = nil
}
