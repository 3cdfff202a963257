package tour

import (
	"errors"
	"fmt"
	"time"
)

// Step is one stop of the guided tour.
type Step struct {
	ID        string
	Title     string
	Narration string
	Section   string
	ReadTime  time.Duration
}

// Catalog is the ordered, immutable list of tour steps.
type Catalog struct {
	steps []Step
}

var errEmptyCatalog = errors.New("tour catalog has no steps")

// NewCatalog validates the steps and returns a catalog holding a private copy.
func NewCatalog(steps ...Step) (Catalog, error) {
	if len(steps) == 0 {
		return Catalog{}, errEmptyCatalog
	}

	seen := make(map[string]bool, len(steps))
	for i, s := range steps {
		if s.ID == "" {
			return Catalog{}, fmt.Errorf("step %d has no id", i)
		}
		if s.Section == "" {
			return Catalog{}, fmt.Errorf("step %q has no target section", s.ID)
		}
		if seen[s.ID] {
			return Catalog{}, fmt.Errorf("duplicate step id %q", s.ID)
		}
		seen[s.ID] = true
	}

	cp := make([]Step, len(steps))
	copy(cp, steps)
	return Catalog{steps: cp}, nil
}

// MustCatalog is NewCatalog for statically defined step lists.
func MustCatalog(steps ...Step) Catalog {
	c, err := NewCatalog(steps...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) Len() int { return len(c.steps) }

// Step returns the step at index i.
func (c Catalog) Step(i int) (Step, bool) {
	if i < 0 || i >= len(c.steps) {
		return Step{}, false
	}
	return c.steps[i], true
}

// Steps returns a copy of all steps in order.
func (c Catalog) Steps() []Step {
	cp := make([]Step, len(c.steps))
	copy(cp, c.steps)
	return cp
}

// Index returns the position of the step with the given id, or -1.
func (c Catalog) Index(id string) int {
	for i, s := range c.steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
