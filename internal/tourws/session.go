package tourws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/tour"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

var (
	ErrSessionClosed = errors.New("tour session closed")
	ErrCallTimeout   = errors.New("browser did not answer in time")
)

// RemoteError is an error the browser reported for a command.
type RemoteError struct {
	Op  string
	Msg string
}

func (e *RemoteError) Error() string { return fmt.Sprintf("browser %s failed: %s", e.Op, e.Msg) }

// Session is one websocket connection. Commands are correlated with their
// replies by id; closing the session fails every pending call.
type Session struct {
	ID   string
	conn *websocket.Conn
	log  *zap.Logger

	send chan []byte
	done chan struct{}
	once sync.Once

	nextID  atomic.Uint64
	mu      sync.Mutex
	pending map[uint64]chan Incoming

	speech atomic.Bool

	stateMu    sync.Mutex
	latest     *tour.State
	stateReady chan struct{}
}

func newSession(id string, conn *websocket.Conn, log *zap.Logger) *Session {
	return &Session{
		ID:         id,
		conn:       conn,
		log:        log,
		send:       make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
		pending:    make(map[uint64]chan Incoming),
		stateReady: make(chan struct{}, 1),
	}
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} { return s.done }

// shutdown ends the session and fails pending calls. Safe to call twice.
func (s *Session) shutdown() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		s.pending = make(map[uint64]chan Incoming)
		s.mu.Unlock()
	})
}

// enqueue queues v for writing, waiting while the buffer is full.
func (s *Session) enqueue(ctx context.Context, v Outgoing) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", v.Type, err)
	}
	select {
	case s.send <- data:
		return nil
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// tryEnqueue queues v without waiting. It reports whether v was queued.
func (s *Session) tryEnqueue(v Outgoing) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("failed to encode frame", zap.String("type", v.Type), zap.Error(err))
		return false
	}
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- data:
		return true
	default:
		s.log.Warn("send buffer full, dropping frame", zap.String("type", v.Type), zap.String("op", v.Op))
		return false
	}
}

// pushState records st as the newest state. Only the newest state is
// written, so a slow client never blocks the tour.
func (s *Session) pushState(st tour.State) {
	s.stateMu.Lock()
	s.latest = &st
	s.stateMu.Unlock()
	select {
	case s.stateReady <- struct{}{}:
	default:
	}
}

func (s *Session) takeState() *tour.State {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	st := s.latest
	s.latest = nil
	return st
}

// call sends a command and waits for its reply.
func (s *Session) call(ctx context.Context, cmd Outgoing, timeout time.Duration) (Incoming, error) {
	id := s.nextID.Add(1)
	cmd.Type = TypeCommand
	cmd.ID = id

	ch := make(chan Incoming, 1)
	s.mu.Lock()
	s.pending[id] = ch
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
	}()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := s.enqueue(ctx, cmd); err != nil {
		return Incoming{}, s.callErr(ctx, cmd.Op, err)
	}

	select {
	case r := <-ch:
		if r.Error != "" {
			return r, &RemoteError{Op: cmd.Op, Msg: r.Error}
		}
		return r, nil
	case <-s.done:
		return Incoming{}, ErrSessionClosed
	case <-ctx.Done():
		return Incoming{}, s.callErr(ctx, cmd.Op, ctx.Err())
	}
}

func (s *Session) callErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ErrCallTimeout)
	}
	return err
}

func (s *Session) resolve(r Incoming) {
	s.mu.Lock()
	ch, ok := s.pending[r.ID]
	s.mu.Unlock()
	if !ok {
		s.log.Debug("reply for unknown or expired call", zap.Uint64("id", r.ID))
		return
	}
	select {
	case ch <- r:
	default:
	}
}

// readPump reads frames until the connection fails and hands each one to
// handle.
func (s *Session) readPump(handle func(Incoming)) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("websocket read error", zap.Error(err))
			} else {
				s.log.Debug("websocket closed")
			}
			return
		}

		var in Incoming
		if err := json.Unmarshal(data, &in); err != nil {
			s.log.Warn("ignoring malformed frame", zap.Error(err))
			continue
		}
		handle(in)
	}
}

// writePump writes queued frames and the latest state, and pings the
// client until the session ends.
func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case data := <-s.send:
			if !s.write(websocket.TextMessage, data) {
				return
			}
		case <-s.stateReady:
			st := s.takeState()
			if st == nil {
				continue
			}
			data, err := json.Marshal(Outgoing{Type: TypeState, State: st})
			if err != nil {
				s.log.Error("failed to encode state", zap.Error(err))
				continue
			}
			if !s.write(websocket.TextMessage, data) {
				return
			}
		case <-ticker.C:
			if !s.write(websocket.PingMessage, nil) {
				return
			}
		case <-s.done:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (s *Session) write(kind int, data []byte) bool {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteMessage(kind, data); err != nil {
		s.log.Debug("websocket write failed", zap.Error(err))
		s.shutdown()
		return false
	}
	return true
}
