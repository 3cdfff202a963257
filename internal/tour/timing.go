package tour

import (
	"strings"
	"time"
)

// Timing holds the tunable delays and tolerances of a tour. Each content
// variant carries its own values.
type Timing struct {
	// HeaderOffset is subtracted from a section's top so the fixed header
	// does not cover it.
	HeaderOffset float64
	// ScrollTimeout bounds how long a navigation waits for the viewport.
	ScrollTimeout time.Duration
	// PollDelay is the wait before the first scroll position check.
	PollDelay time.Duration
	// PollInterval is the wait between subsequent checks.
	PollInterval time.Duration
	// ScrollTolerance is the distance in pixels that counts as arrived.
	ScrollTolerance float64

	PerWord time.Duration
	MinRead time.Duration
	MaxRead time.Duration

	// AdvanceBuffer is the pause after narration before the next step.
	AdvanceBuffer time.Duration
	// EndBuffer is the pause after the final step before playback stops.
	EndBuffer time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		HeaderOffset:    100,
		ScrollTimeout:   1500 * time.Millisecond,
		PollDelay:       800 * time.Millisecond,
		PollInterval:    100 * time.Millisecond,
		ScrollTolerance: 50,
		PerWord:         60 * time.Millisecond,
		MinRead:         3 * time.Second,
		MaxRead:         20 * time.Second,
		AdvanceBuffer:   time.Second,
		EndBuffer:       2 * time.Second,
	}
}

// ReadingTime is the timed narration length for text:
// clamp(words*PerWord, MinRead, MaxRead). A zero MaxRead disables the upper bound.
func (t Timing) ReadingTime(text string) time.Duration {
	d := time.Duration(WordCount(text)) * t.PerWord
	if d < t.MinRead {
		d = t.MinRead
	}
	if t.MaxRead > 0 && d > t.MaxRead {
		d = t.MaxRead
	}
	return d
}

func WordCount(text string) int {
	return len(strings.Fields(text))
}
