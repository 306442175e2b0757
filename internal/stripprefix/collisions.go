package stripprefix

import "slices"

// Collision is a clean destination claimed by more than one source.
type Collision struct {
	Destination string   `json:"destination"`
	Sources     []string `json:"sources"`
}

// CollisionTable maps clean destinations to the sources that produce them,
// in insertion order.
type CollisionTable struct {
	order   []string
	sources map[string][]string
}

// NewCollisionTable returns an empty table.
func NewCollisionTable() *CollisionTable {
	return &CollisionTable{sources: make(map[string][]string)}
}

// Add records that src maps to dest.
func (t *CollisionTable) Add(dest, src string) {
	key := destinationKey(dest)
	if _, seen := t.sources[key]; !seen {
		t.order = append(t.order, key)
	}
	t.sources[key] = append(t.sources[key], src)
}

// Collides reports whether dest is claimed by two or more sources.
func (t *CollisionTable) Collides(dest string) bool {
	return len(t.sources[destinationKey(dest)]) > 1
}

// Sources returns the sources claiming dest.
func (t *CollisionTable) Sources(dest string) []string {
	return slices.Clone(t.sources[destinationKey(dest)])
}

// Collisions returns every collision in the order its destination was first seen.
func (t *CollisionTable) Collisions() []Collision {
	var out []Collision
	for _, key := range t.order {
		if srcs := t.sources[key]; len(srcs) > 1 {
			out = append(out, Collision{Destination: key, Sources: slices.Clone(srcs)})
		}
	}
	return out
}
