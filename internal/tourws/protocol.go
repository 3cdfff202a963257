// Package tourws runs a guided tour per websocket connection. The server
// owns the tour state machine; the browser answers DOM and speech commands
// and sends control actions.
package tourws

import (
	"github.com/tauqeerkhan/portfolio/internal/tour"
)

// Frame types.
const (
	TypeCommand = "command"
	TypeState   = "state"
	TypeSteps   = "steps"
	TypeError   = "error"
	TypeReply   = "reply"
	TypeControl = "control"
	TypeHello   = "hello"
)

// Command ops the browser executes.
const (
	OpFind     = "find"
	OpScroll   = "scroll"
	OpPosition = "position"
	OpSpeak    = "speak"
	OpCancel   = "cancel"
)

// Control actions the browser sends.
const (
	ActionStart    = "start"
	ActionPlay     = "play"
	ActionPause    = "pause"
	ActionNext     = "next"
	ActionPrevious = "previous"
	ActionJump     = "jump"
	ActionClose    = "close"
	ActionVoice    = "voice"
)

// Outgoing is every frame the server writes. Unused fields are omitted.
type Outgoing struct {
	Type     string         `json:"type"`
	ID       uint64         `json:"id,omitempty"`
	Op       string         `json:"op,omitempty"`
	Selector *tour.Selector `json:"selector,omitempty"`
	Top      *float64       `json:"top,omitempty"`
	Text     string         `json:"text,omitempty"`
	State    *tour.State    `json:"state,omitempty"`
	Steps    []StepView     `json:"steps,omitempty"`
	Action   string         `json:"action,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// Incoming is every frame the browser sends.
type Incoming struct {
	Type string `json:"type"`

	// reply
	ID    uint64  `json:"id,omitempty"`
	Found bool    `json:"found,omitempty"`
	Top   float64 `json:"top,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Error string  `json:"error,omitempty"`

	// control
	Action  string `json:"action,omitempty"`
	Index   int    `json:"index,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`

	// hello
	Speech bool `json:"speech,omitempty"`
}

// StepView is the public shape of a tour step.
type StepView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Narration string `json:"narration"`
	Section   string `json:"section"`
	ReadTime  int64  `json:"readTimeMs"`
}

func StepViews(c tour.Catalog) []StepView {
	steps := c.Steps()
	out := make([]StepView, len(steps))
	for i, s := range steps {
		out[i] = StepView{
			ID:        s.ID,
			Title:     s.Title,
			Narration: s.Narration,
			Section:   s.Section,
			ReadTime:  s.ReadTime.Milliseconds(),
		}
	}
	return out
}
