package tour

import (
	"context"
	"errors"
	"sync"
	"time"
)

func fastTiming() Timing {
	return Timing{
		HeaderOffset:    100,
		ScrollTimeout:   60 * time.Millisecond,
		PollDelay:       5 * time.Millisecond,
		PollInterval:    5 * time.Millisecond,
		ScrollTolerance: 50,
		PerWord:         time.Millisecond,
		MinRead:         20 * time.Millisecond,
		MaxRead:         200 * time.Millisecond,
		AdvanceBuffer:   20 * time.Millisecond,
		EndBuffer:       20 * time.Millisecond,
	}
}

// fakeViewport resolves selectors from a table and lands scrolls instantly
// unless stuck is set. A positive slowY delays every position reply.
type fakeViewport struct {
	mu       sync.Mutex
	elements map[Selector]float64
	y        float64
	stuck    bool
	findErr  error
	kindErrs map[SelectorKind]error
	slowY    time.Duration
	scrolls  []float64
}

func newFakeViewport() *fakeViewport {
	return &fakeViewport{elements: make(map[Selector]float64)}
}

func (v *fakeViewport) add(kind SelectorKind, value string, top float64) *fakeViewport {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.elements[Selector{Kind: kind, Value: value}] = top
	return v
}

func (v *fakeViewport) Find(ctx context.Context, sel Selector) (Element, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.findErr != nil {
		return Element{}, false, v.findErr
	}
	if err := v.kindErrs[sel.Kind]; err != nil {
		return Element{}, false, err
	}
	top, ok := v.elements[sel]
	return Element{Top: top}, ok, nil
}

func (v *fakeViewport) ScrollTo(ctx context.Context, top float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrolls = append(v.scrolls, top)
	if !v.stuck {
		v.y = top
	}
	return nil
}

func (v *fakeViewport) ScrollY(ctx context.Context) (float64, error) {
	v.mu.Lock()
	delay := v.slowY
	v.mu.Unlock()
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.y, nil
}

func (v *fakeViewport) scrollCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.scrolls)
}

// fakeSpeaker blocks in Speak until released, interrupted by Cancel or
// cancelled through ctx, unless fail is set.
type fakeSpeaker struct {
	supported bool
	fail      error

	mu      sync.Mutex
	spoken  []string
	active  int
	cancels int
	aborted int
	current chan struct{}
	release chan struct{}
}

func newFakeSpeaker() *fakeSpeaker {
	return &fakeSpeaker{supported: true, release: make(chan struct{})}
}

func (s *fakeSpeaker) Supported() bool { return s.supported }

func (s *fakeSpeaker) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	s.spoken = append(s.spoken, text)
	if s.fail != nil {
		s.mu.Unlock()
		return s.fail
	}
	interrupted := make(chan struct{})
	s.current = interrupted
	s.active++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.active--
		if s.current == interrupted {
			s.current = nil
		}
		s.mu.Unlock()
	}()

	select {
	case <-s.release:
		return nil
	case <-interrupted:
		return errors.New("interrupted")
	case <-ctx.Done():
		s.mu.Lock()
		s.aborted++
		s.mu.Unlock()
		return ctx.Err()
	}
}

func (s *fakeSpeaker) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancels++
	if s.current != nil {
		close(s.current)
		s.current = nil
	}
}

func (s *fakeSpeaker) snapshot() (spoken []string, active, cancels, aborted int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.spoken...), s.active, s.cancels, s.aborted
}

// recorder collects every state the controller publishes.
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) observe(s State) {
	r.mu.Lock()
	r.states = append(r.states, s)
	r.mu.Unlock()
}

func (r *recorder) all() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}

func testCatalog(n int) Catalog {
	ids := []string{"home", "about", "skills", "projects", "contact"}
	steps := make([]Step, n)
	for i := 0; i < n; i++ {
		steps[i] = Step{
			ID:        ids[i],
			Title:     ids[i],
			Narration: "a short line of narration for " + ids[i],
			Section:   ids[i],
		}
	}
	return MustCatalog(steps...)
}

func viewportFor(c Catalog) *fakeViewport {
	vp := newFakeViewport()
	for i, s := range c.Steps() {
		vp.add(ByID, s.Section, float64(1000*i))
	}
	return vp
}
