package tour

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Phase is the controller's position in the playback state machine.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseIdle
	PhaseNavigating
	PhaseSpeaking
	PhaseWaiting
	PhaseEnded
)

var phaseNames = [...]string{"closed", "idle", "navigating", "speaking", "waiting", "ended"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tour phase %q", b)
}

// State is a snapshot of the tour. Version increases with every transition.
type State struct {
	Version        uint64 `json:"version"`
	Phase          Phase  `json:"phase"`
	Step           int    `json:"step"`
	StepID         string `json:"stepId"`
	Total          int    `json:"total"`
	Open           bool   `json:"open"`
	Playing        bool   `json:"playing"`
	Speaking       bool   `json:"speaking"`
	Navigating     bool   `json:"navigating"`
	VoiceEnabled   bool   `json:"voiceEnabled"`
	VoiceSupported bool   `json:"voiceSupported"`
	NavError       string `json:"navError,omitempty"`
}

// Busy reports whether a step is navigating or speaking.
func (s State) Busy() bool { return s.Navigating || s.Speaking }

var (
	ErrClosed           = errors.New("tour is closed")
	ErrBusy             = errors.New("tour is navigating or speaking")
	ErrStepOutOfRange   = errors.New("step index out of range")
	ErrVoiceUnsupported = errors.New("voice narration is not supported")
)

// Observer receives a snapshot after each transition. Observers run while
// the controller lock is held and must not call back into the Controller.
type Observer func(State)

type Option func(*Controller)

func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithVoice sets the initial voice preference.
func WithVoice(enabled bool) Option {
	return func(c *Controller) { c.voice = enabled }
}

// Controller sequences navigate, narrate and auto-advance for each step.
// Every external transition first cancels all pending work of the previous
// step, so at most one navigation, narration and advance timer are live.
type Controller struct {
	catalog   Catalog
	timing    Timing
	log       *zap.Logger
	observers []Observer
	voice     bool

	nav      *Navigator
	narrator *Narrator

	mu     sync.Mutex
	state  State
	gen    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewController(catalog Catalog, vp Viewport, sp Speaker, timing Timing, opts ...Option) *Controller {
	c := &Controller{catalog: catalog, timing: timing}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.nav = NewNavigator(vp, timing, c.log)
	c.narrator = NewNarrator(sp, timing, c.log)
	c.state = c.initialState()
	return c
}

func (c *Controller) Catalog() Catalog { return c.catalog }

// State returns a snapshot of the current tour state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.VoiceSupported = c.narrator.VoiceSupported()
	return s
}

// Start opens the tour at step 0 and begins playing. Starting an open tour
// restarts it.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.catalog.Len() == 0 {
		return ErrStepOutOfRange
	}
	c.cancelPendingLocked()
	c.state.Open = true
	c.state.Playing = true
	c.state.NavError = ""
	c.launchLocked(0)
	return nil
}

// Play resumes from the current step, or restarts the tour from the final step.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Open {
		return ErrClosed
	}
	if c.state.Playing && c.state.Phase != PhaseEnded {
		return nil
	}

	c.cancelPendingLocked()
	c.state.Playing = true
	if c.state.Step < c.catalog.Len()-1 {
		c.launchLocked(c.state.Step)
	} else {
		c.state.NavError = ""
		c.launchLocked(0)
	}
	return nil
}

// Pause stops narration and any pending advance, keeping the current step.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Open {
		return ErrClosed
	}

	c.cancelPendingLocked()
	c.state.Playing = false
	c.state.Phase = PhaseIdle
	c.commitLocked()
	return nil
}

func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.jumpLocked(c.state.Step + 1)
}

func (c *Controller) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.jumpLocked(c.state.Step - 1)
}

// Jump moves to step i. It is rejected while a step is navigating or speaking.
func (c *Controller) Jump(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.jumpLocked(i)
}

// Close cancels everything and resets the tour to its initial state.
// The voice preference survives.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPendingLocked()
	voice := c.state.VoiceEnabled
	version := c.state.Version
	c.state = c.initialState()
	c.state.VoiceEnabled = voice
	c.state.Version = version
	c.commitLocked()
}

// SetVoice toggles voice narration. Turning voice off mid-utterance cuts the
// speech short and the step finishes on the timed fallback. Turning it on
// while a playing step waits to advance narrates that step again aloud.
func (c *Controller) SetVoice(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if enabled && !c.narrator.VoiceSupported() {
		return ErrVoiceUnsupported
	}
	if c.state.VoiceEnabled == enabled {
		return nil
	}
	c.state.VoiceEnabled = enabled
	if !enabled && c.state.Speaking {
		c.narrator.Interrupt()
	}
	if enabled && c.state.Playing && c.state.Phase == PhaseWaiting {
		c.cancelPendingLocked()
		c.launchLocked(c.state.Step)
		return nil
	}
	c.commitLocked()
	return nil
}

// Wait blocks until all step goroutines have exited. Callers close or
// pause the tour first.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) initialState() State {
	return State{
		Phase:          PhaseClosed,
		Total:          c.catalog.Len(),
		StepID:         c.stepID(0),
		VoiceEnabled:   c.voice && c.narrator.VoiceSupported(),
		VoiceSupported: c.narrator.VoiceSupported(),
	}
}

func (c *Controller) stepID(i int) string {
	s, _ := c.catalog.Step(i)
	return s.ID
}

func (c *Controller) jumpLocked(i int) error {
	if !c.state.Open {
		return ErrClosed
	}
	if c.state.Busy() {
		return ErrBusy
	}
	if i < 0 || i >= c.catalog.Len() {
		return ErrStepOutOfRange
	}

	c.cancelPendingLocked()
	c.launchLocked(i)
	return nil
}

// cancelPendingLocked is the single "cancel all pending work" transition.
func (c *Controller) cancelPendingLocked() {
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.narrator.Stop()
	c.state.Navigating = false
	c.state.Speaking = false
}

func (c *Controller) launchLocked(i int) {
	c.gen++
	gen := c.gen
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.state.Step = i
	c.state.StepID = c.stepID(i)
	c.state.Phase = PhaseNavigating
	c.state.Navigating = true
	c.state.Speaking = false
	c.commitLocked()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx, gen, i)
	}()
}

func (c *Controller) commitLocked() {
	c.state.Version++
	c.state.VoiceSupported = c.narrator.VoiceSupported()
	snap := c.state
	for _, o := range c.observers {
		o(snap)
	}
}

// update applies fn if gen is still the live generation.
func (c *Controller) update(gen uint64, fn func(*State)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	fn(&c.state)
	c.commitLocked()
	return true
}

func (c *Controller) run(ctx context.Context, gen uint64, i int) {
	step, _ := c.catalog.Step(i)
	log := c.log.With(zap.Int("step", i), zap.String("step_id", step.ID))

	res := c.nav.Navigate(ctx, step.Section)
	if ctx.Err() != nil {
		return
	}
	if res.Warning != nil {
		log.Warn("navigation failed, continuing with narration", zap.Error(res.Warning))
	}

	var voice bool
	ok := c.update(gen, func(s *State) {
		s.Navigating = false
		s.NavError = ""
		if res.Warning != nil {
			s.NavError = res.Warning.Error()
		}
		s.Phase = PhaseSpeaking
		s.Speaking = true
		voice = s.VoiceEnabled
	})
	if !ok {
		return
	}

	if err := c.narrator.Narrate(ctx, step.Narration, voice); err != nil || ctx.Err() != nil {
		return
	}

	last := i == c.catalog.Len()-1
	var playing bool
	ok = c.update(gen, func(s *State) {
		s.Speaking = false
		playing = s.Playing
		if playing {
			s.Phase = PhaseWaiting
		} else {
			s.Phase = PhaseIdle
		}
	})
	if !ok || !playing {
		return
	}

	buffer := c.timing.AdvanceBuffer
	if last {
		buffer = c.timing.EndBuffer
	}
	if sleep(ctx, buffer) != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	if last {
		log.Debug("tour finished")
		c.gen++
		c.cancel()
		c.cancel = nil
		c.state.Playing = false
		c.state.Phase = PhaseEnded
		c.commitLocked()
		return
	}
	c.cancel()
	c.launchLocked(i + 1)
}
