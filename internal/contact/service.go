package contact

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	MsgSaved       = "Thank you for your message! It has been saved successfully."
	MsgInvalid     = "Please correct the errors and try again."
	MsgStoreFailed = "There was an error saving your message. Please try again."
)

var ErrNotConfigured = errors.New("contact store not configured")

// Store persists contact messages. Implementations assign the timestamp.
type Store interface {
	Save(ctx context.Context, f Form) (string, error)
}

// Notifier is told about each saved message. Failures never fail the
// submission.
type Notifier interface {
	Notify(ctx context.Context, f Form) error
}

type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
	ID      string      `json:"id,omitempty"`
}

type Service struct {
	store    Store
	notifier Notifier
	log      *zap.Logger
}

// NewService returns a service saving into store. notifier may be nil.
func NewService(store Store, notifier Notifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, notifier: notifier, log: log.Named("contact")}
}

// Submit validates f and saves it. Invalid forms never reach the store.
func (s *Service) Submit(ctx context.Context, f Form) Result {
	f = f.Normalize()
	if errs := f.Validate(); errs != nil {
		return Result{Message: MsgInvalid, Errors: errs}
	}

	if s.store == nil {
		s.log.Error("contact submission dropped", zap.Error(ErrNotConfigured))
		return Result{Message: MsgStoreFailed}
	}

	id, err := s.store.Save(ctx, f)
	if err != nil {
		s.log.Error("failed to save contact message", zap.Error(err))
		return Result{Message: MsgStoreFailed}
	}
	s.log.Info("contact message saved", zap.String("id", id))

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, f); err != nil {
			s.log.Warn("contact notification failed", zap.String("id", id), zap.Error(err))
		}
	}
	return Result{Success: true, Message: MsgSaved, ID: id}
}
