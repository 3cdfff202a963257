// Package content holds the static copy of each portfolio variant: the
// page sections, the chatbot biography and the guided tour steps.
package content

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tauqeerkhan/portfolio/internal/tour"
)

var ErrUnknownVariant = errors.New("unknown content variant")

// Entry is one card inside a section: a job, a degree, a project, a skill
// group or a certificate.
type Entry struct {
	Title       string
	Subtitle    string
	Period      string
	Description string
	Highlights  []string
	Tags        []string
}

type Section struct {
	ID      string
	Title   string
	Intro   string
	Entries []Entry
}

type Variant struct {
	Key      string
	Owner    string
	Role     string
	Headline string
	About    []string
	Email    string
	Sections []Section
	// Biography is the context block the chatbot answers from.
	Biography string
	Steps     tour.Catalog
	Timing    tour.Timing
}

// Section returns the section with the given id.
func (v *Variant) Section(id string) (Section, bool) {
	for _, s := range v.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Validate checks that every tour step targets a section the page renders.
func (v *Variant) Validate() error {
	for _, st := range v.Steps.Steps() {
		if _, ok := v.Section(st.Section); !ok {
			return fmt.Errorf("variant %s: step %q targets missing section %q", v.Key, st.ID, st.Section)
		}
	}
	return nil
}

var registry = map[string]*Variant{
	developer.Key: developer,
	finance.Key:   finance,
}

// Lookup returns the variant registered under key.
func Lookup(key string) (*Variant, error) {
	v, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, key)
	}
	return v, nil
}

// Keys lists the registered variants in name order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
