package tour

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Speaker is an on-device speech synthesizer.
type Speaker interface {
	Supported() bool
	// Speak blocks until the utterance finishes, fails, or ctx is done.
	Speak(ctx context.Context, text string) error
	// Cancel aborts the active utterance, if any.
	Cancel()
}

// ErrSpeechUnsupported is returned by speakers without a synthesizer.
var ErrSpeechUnsupported = errors.New("speech synthesis not supported")

// Silent is a Speaker for hosts without speech synthesis.
type Silent struct{}

func (Silent) Supported() bool                     { return false }
func (Silent) Speak(context.Context, string) error { return ErrSpeechUnsupported }
func (Silent) Cancel()                             {}

// Narrator reads step text aloud, or waits a word-count-proportional delay
// when voice is off or fails. At most one narration is active; starting a
// new one cancels the previous.
type Narrator struct {
	speaker Speaker
	timing  Timing
	log     *zap.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewNarrator(sp Speaker, timing Timing, log *zap.Logger) *Narrator {
	if sp == nil {
		sp = Silent{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Narrator{speaker: sp, timing: timing, log: log.Named("narrator")}
}

// VoiceSupported reports whether the underlying speaker can synthesize speech.
func (n *Narrator) VoiceSupported() bool { return n.speaker.Supported() }

// Narrate returns nil once the narration has finished, or ctx.Err() if it was
// cancelled or superseded.
func (n *Narrator) Narrate(ctx context.Context, text string, voice bool) error {
	ctx, done := n.begin(ctx)
	defer done()

	if voice && n.speaker.Supported() {
		err := n.speaker.Speak(ctx, text)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		n.log.Warn("speech failed, falling back to timed narration", zap.Error(err))
	}

	return sleep(ctx, n.timing.ReadingTime(text))
}

// Stop cancels the active narration.
func (n *Narrator) Stop() {
	n.mu.Lock()
	cancel := n.cancel
	n.cancel = nil
	n.mu.Unlock()

	if cancel != nil {
		cancel()
		n.speaker.Cancel()
	}
}

// Interrupt cuts the current utterance short without cancelling the
// narration, which then finishes on the timed fallback.
func (n *Narrator) Interrupt() {
	n.speaker.Cancel()
}

func (n *Narrator) begin(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)

	n.mu.Lock()
	prev := n.cancel
	n.seq++
	seq := n.seq
	n.cancel = cancel
	n.mu.Unlock()

	if prev != nil {
		prev()
		n.speaker.Cancel()
	}

	return ctx, func() {
		n.mu.Lock()
		if n.seq == seq {
			n.cancel = nil
		}
		n.mu.Unlock()
		cancel()
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
