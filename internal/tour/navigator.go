package tour

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// SelectorKind names one strategy for locating a page section.
type SelectorKind string

const (
	ByID          SelectorKind = "id"
	ByDataSection SelectorKind = "data-section"
	ByClass       SelectorKind = "class"
	ByAnchor      SelectorKind = "anchor"
)

// Selector describes how to find an element. For ByAnchor, Value is the
// fragment target of an a[href="#Value"] link.
type Selector struct {
	Kind  SelectorKind `json:"kind"`
	Value string       `json:"value"`
}

// SelectorsFor returns the lookup chain for a section, in the order tried.
func SelectorsFor(section string) []Selector {
	return []Selector{
		{Kind: ByID, Value: section},
		{Kind: ByDataSection, Value: section},
		{Kind: ByClass, Value: section + "-section"},
		{Kind: ByAnchor, Value: section},
	}
}

// Element is a located section. Top is its absolute offset from the
// start of the document.
type Element struct {
	Top float64 `json:"top"`
}

// Viewport is the page capability the navigator drives.
type Viewport interface {
	Find(ctx context.Context, sel Selector) (Element, bool, error)
	ScrollTo(ctx context.Context, top float64) error
	ScrollY(ctx context.Context) (float64, error)
}

// ErrSectionNotFound is reported when no selector in the chain matches.
var ErrSectionNotFound = errors.New("section not found")

// NavigationError is the non-fatal warning produced by a failed navigation.
type NavigationError struct {
	Section string
	Err     error
}

func (e *NavigationError) Error() string {
	if errors.Is(e.Err, ErrSectionNotFound) {
		return fmt.Sprintf("Section %q not found. Please ensure all sections are properly loaded.", e.Section)
	}
	return fmt.Sprintf("navigate to %q: %v", e.Section, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// NavResult is the outcome of a navigation. Warning is set when the section
// could not be reached; it is never fatal to the tour.
type NavResult struct {
	Reached   bool
	Converged bool
	Target    float64
	Warning   *NavigationError
}

type Navigator struct {
	viewport Viewport
	timing   Timing
	log      *zap.Logger
}

func NewNavigator(vp Viewport, timing Timing, log *zap.Logger) *Navigator {
	if log == nil {
		log = zap.NewNop()
	}
	if timing.PollInterval <= 0 {
		timing.PollInterval = DefaultTiming().PollInterval
	}
	return &Navigator{viewport: vp, timing: timing, log: log.Named("navigator")}
}

// Locate walks the selector chain and returns the first match. A failing
// selector does not stop the chain; its error is reported only when nothing
// matched.
func (n *Navigator) Locate(ctx context.Context, section string) (Element, Selector, error) {
	var firstErr error
	for _, sel := range SelectorsFor(section) {
		if err := ctx.Err(); err != nil {
			return Element{}, Selector{}, err
		}
		el, ok, err := n.viewport.Find(ctx, sel)
		if err != nil {
			n.log.Debug("selector lookup failed", zap.String("section", section), zap.String("selector", string(sel.Kind)), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if ok {
			return el, sel, nil
		}
	}
	if firstErr != nil {
		return Element{}, Selector{}, firstErr
	}
	return Element{}, Selector{}, ErrSectionNotFound
}

// Navigate scrolls the viewport to section and waits until the position
// converges or ScrollTimeout elapses. ScrollTimeout also bounds the viewport
// calls themselves. A cancelled ctx yields a zero result.
func (n *Navigator) Navigate(ctx context.Context, section string) NavResult {
	el, sel, err := n.Locate(ctx, section)
	if ctx.Err() != nil {
		return NavResult{}
	}
	if err != nil {
		n.log.Warn("section lookup failed", zap.String("section", section), zap.Error(err))
		return NavResult{Warning: &NavigationError{Section: section, Err: err}}
	}
	n.log.Debug("section located", zap.String("section", section), zap.String("selector", string(sel.Kind)), zap.Float64("top", el.Top))

	target := math.Max(el.Top-n.timing.HeaderOffset, 0)
	dctx, cancel := context.WithTimeout(ctx, n.timing.ScrollTimeout)
	defer cancel()

	if err := n.viewport.ScrollTo(dctx, target); err != nil {
		switch {
		case ctx.Err() != nil:
			return NavResult{}
		case dctx.Err() != nil:
			n.log.Debug("scroll request outlived timeout", zap.String("section", section))
			return NavResult{Reached: true, Target: target}
		}
		return NavResult{Target: target, Warning: &NavigationError{Section: section, Err: err}}
	}

	poll := time.NewTimer(n.timing.PollDelay)
	defer poll.Stop()

	for {
		select {
		case <-dctx.Done():
			if ctx.Err() != nil {
				return NavResult{}
			}
			n.log.Debug("scroll did not converge before timeout", zap.String("section", section))
			return NavResult{Reached: true, Target: target}
		case <-poll.C:
			y, err := n.viewport.ScrollY(dctx)
			if err == nil && math.Abs(y-target) < n.timing.ScrollTolerance {
				return NavResult{Reached: true, Converged: true, Target: target}
			}
			poll.Reset(n.timing.PollInterval)
		}
	}
}
