package tourws

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/metrics"
	"github.com/tauqeerkhan/portfolio/internal/tour"
)

// Tour is what a variant contributes to a session.
type Tour struct {
	Catalog tour.Catalog
	Timing  tour.Timing
}

// Resolver maps the variant query parameter to its tour.
type Resolver func(variant string) (Tour, error)

type Config struct {
	// CallTimeout bounds find, scroll and position commands.
	CallTimeout time.Duration
	// SpeakTimeout bounds a single utterance.
	SpeakTimeout time.Duration
	// AllowedOrigins lists cross-origin pages allowed to connect. Same-origin
	// requests are always allowed.
	AllowedOrigins []string
}

type Handler struct {
	resolve  Resolver
	cfg      Config
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewHandler(resolve Resolver, cfg Config, log *zap.Logger) *Handler {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 5 * time.Second
	}
	if cfg.SpeakTimeout <= 0 {
		cfg.SpeakTimeout = 2 * time.Minute
	}
	h := &Handler{resolve: resolve, cfg: cfg, log: log.Named("tourws")}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	return slices.Contains(h.cfg.AllowedOrigins, origin)
}

// Serve upgrades the request and runs a tour until the connection closes.
func (h *Handler) Serve(c *gin.Context) {
	variant := c.Query("variant")
	t, err := h.resolve(variant)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.NewString()
	log := h.log.With(zap.String("session_id", id), zap.String("variant", variant))
	s := newSession(id, conn, log)
	h.run(s, t, variant, log)
}

func (h *Handler) run(s *Session, t Tour, variant string, log *zap.Logger) {
	metrics.TourSessions.Inc()
	defer metrics.TourSessions.Dec()
	log.Info("tour session opened")

	warned := -1
	ctrl := tour.NewController(t.Catalog,
		&remoteViewport{s: s, timeout: h.cfg.CallTimeout},
		&remoteSpeaker{s: s, timeout: h.cfg.SpeakTimeout},
		t.Timing,
		tour.WithLogger(log),
		tour.WithVoice(true),
		tour.WithObserver(s.pushState),
		tour.WithObserver(func(st tour.State) {
			if st.NavError != "" && st.Step != warned {
				warned = st.Step
				if step, ok := t.Catalog.Step(st.Step); ok {
					metrics.TourNavigationWarnings.WithLabelValues(variant, step.Section).Inc()
				}
			}
		}),
	)

	go s.writePump()
	_ = s.enqueue(context.Background(), Outgoing{Type: TypeSteps, Steps: StepViews(t.Catalog)})
	s.pushState(ctrl.State())

	s.readPump(func(in Incoming) { h.dispatch(s, ctrl, in, log) })

	ctrl.Close()
	s.shutdown()
	ctrl.Wait()
	log.Info("tour session closed")
}

func (h *Handler) dispatch(s *Session, ctrl *tour.Controller, in Incoming, log *zap.Logger) {
	switch in.Type {
	case TypeReply:
		s.resolve(in)
	case TypeHello:
		s.speech.Store(in.Speech)
		if in.Speech {
			// Voice defaults to on once the browser can speak.
			_ = ctrl.SetVoice(true)
		}
		s.pushState(ctrl.State())
	case TypeControl:
		err := control(ctrl, in)
		action, result := in.Action, "ok"
		if errors.Is(err, errUnknownAction) {
			action = "unknown"
		}
		if err != nil {
			result = "rejected"
			log.Debug("tour control rejected", zap.String("action", in.Action), zap.Error(err))
			s.tryEnqueue(Outgoing{Type: TypeError, Action: in.Action, Error: err.Error()})
		}
		metrics.TourControls.WithLabelValues(action, result).Inc()
	default:
		log.Warn("ignoring unknown frame type", zap.String("type", in.Type))
	}
}

var errUnknownAction = errors.New("unknown tour action")

func control(ctrl *tour.Controller, in Incoming) error {
	switch in.Action {
	case ActionStart:
		return ctrl.Start()
	case ActionPlay:
		return ctrl.Play()
	case ActionPause:
		return ctrl.Pause()
	case ActionNext:
		return ctrl.Next()
	case ActionPrevious:
		return ctrl.Previous()
	case ActionJump:
		return ctrl.Jump(in.Index)
	case ActionClose:
		ctrl.Close()
		return nil
	case ActionVoice:
		return ctrl.SetVoice(in.Enabled)
	default:
		return errUnknownAction
	}
}
