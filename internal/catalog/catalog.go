// Package catalog holds the read-only exercise catalog: every exercise the
// app can prescribe, keyed by joint, treatment level, and movement category.
package catalog

// Exercise is a single catalog entry. The catalog is lookup-only; nothing in
// the engines ever writes to it.
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Joint    Joint  `json:"joint"`
	Level    int    `json:"level"` // 1..4
	Category string `json:"category"`
}

// Catalog provides indexed access to a fixed set of exercises.
type Catalog struct {
	exercises []Exercise
	byID      map[string]*Exercise
}

// New builds a catalog from a slice of exercises.
func New(exercises []Exercise) *Catalog {
	c := &Catalog{
		exercises: exercises,
		byID:      make(map[string]*Exercise, len(exercises)),
	}
	for i := range c.exercises {
		c.byID[c.exercises[i].ID] = &c.exercises[i]
	}
	return c
}

// Default returns a catalog built from the seed data.
func Default() *Catalog {
	return New(seedExercises)
}

// Get looks up an exercise by ID.
func (c *Catalog) Get(id string) (Exercise, bool) {
	if e, ok := c.byID[id]; ok {
		return *e, true
	}
	return Exercise{}, false
}

// Filter returns the exercises matching a level and joint, in seed order.
func (c *Catalog) Filter(level int, joint Joint) []Exercise {
	var result []Exercise
	for _, e := range c.exercises {
		if e.Level == level && e.Joint == joint {
			result = append(result, e)
		}
	}
	return result
}

// ByCategory groups the exercises matching a level and joint by category.
func (c *Catalog) ByCategory(level int, joint Joint) map[string][]Exercise {
	groups := make(map[string][]Exercise)
	for _, e := range c.Filter(level, joint) {
		groups[e.Category] = append(groups[e.Category], e)
	}
	return groups
}

// Len returns the number of exercises in the catalog.
func (c *Catalog) Len() int {
	return len(c.exercises)
}
