package tourws

import (
	"context"
	"time"

	"github.com/tauqeerkhan/portfolio/internal/tour"
)

// remoteViewport forwards DOM lookups and scrolling to the browser.
type remoteViewport struct {
	s       *Session
	timeout time.Duration
}

func (v *remoteViewport) Find(ctx context.Context, sel tour.Selector) (tour.Element, bool, error) {
	r, err := v.s.call(ctx, Outgoing{Op: OpFind, Selector: &sel}, v.timeout)
	if err != nil {
		return tour.Element{}, false, err
	}
	return tour.Element{Top: r.Top}, r.Found, nil
}

func (v *remoteViewport) ScrollTo(ctx context.Context, top float64) error {
	_, err := v.s.call(ctx, Outgoing{Op: OpScroll, Top: &top}, v.timeout)
	return err
}

func (v *remoteViewport) ScrollY(ctx context.Context) (float64, error) {
	r, err := v.s.call(ctx, Outgoing{Op: OpPosition}, v.timeout)
	if err != nil {
		return 0, err
	}
	return r.Y, nil
}

// remoteSpeaker drives the browser's speech synthesis. The browser replies
// to a speak command once the utterance has ended.
type remoteSpeaker struct {
	s       *Session
	timeout time.Duration
}

func (sp *remoteSpeaker) Supported() bool { return sp.s.speech.Load() }

func (sp *remoteSpeaker) Speak(ctx context.Context, text string) error {
	if !sp.Supported() {
		return tour.ErrSpeechUnsupported
	}
	_, err := sp.s.call(ctx, Outgoing{Op: OpSpeak, Text: text}, sp.timeout)
	if err != nil {
		sp.Cancel()
	}
	return err
}

// Cancel never blocks; it may run under the controller lock.
func (sp *remoteSpeaker) Cancel() {
	if !sp.Supported() {
		return
	}
	sp.s.tryEnqueue(Outgoing{Type: TypeCommand, Op: OpCancel})
}
