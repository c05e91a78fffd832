package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/dom"
	"github.com/vango-dev/ffui/pkg/dom/memdom"
	"github.com/vango-dev/ffui/pkg/metrics"
	"github.com/vango-dev/ffui/pkg/mount"
	"github.com/vango-dev/ffui/pkg/protocol"
	"github.com/vango-dev/ffui/pkg/reactive"
)

// Session is one connected client and the component mounted for it.
type Session struct {
	ID string

	conn    *websocket.Conn
	doc     *memdom.Document
	driver  *mount.Driver
	config  Config
	logger  *slog.Logger
	metrics *metrics.Collector
	tracer  trace.Tracer

	// Owned by the read loop.
	pending       []dom.Mutation
	errs          []error
	seq           uint64
	events        int
	stopObserving func()

	done   chan struct{}
	closed atomic.Bool
}

// generateSessionID generates a cryptographically random session ID.
func generateSessionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}

// newSession mounts c into a fresh document. Nothing is sent until run.
func newSession(conn *websocket.Conn, c *reactive.Component, config Config, logger *slog.Logger, m *metrics.Collector, tracer trace.Tracer) (*Session, error) {
	id := generateSessionID()
	s := &Session{
		ID:      id,
		conn:    conn,
		doc:     memdom.New(),
		config:  config,
		logger:  logger.With("session", id),
		metrics: m,
		tracer:  tracer,
		done:    make(chan struct{}),
	}
	s.stopObserving = s.doc.Observe(func(m dom.Mutation) {
		s.pending = append(s.pending, m)
	})

	driver, err := mount.Mount(s.doc.Body(), c,
		mount.WithLogger(s.logger),
		mount.WithMetrics(m),
		mount.WithTracer(tracer),
		mount.WithErrorHandler(s.reportError),
	)
	if err != nil {
		s.stopObserving()
		return nil, err
	}
	s.driver = driver
	return s, nil
}

// Driver returns the session's mount driver.
func (s *Session) Driver() *mount.Driver {
	return s.driver
}

// run sends the initial paint and processes events until the connection
// ends. It must be called once, from the goroutine that owns the session.
func (s *Session) run() {
	defer func() {
		s.stopObserving()
		s.Close()
		s.logger.Info("session ended", "events", s.events, "batches", s.seq)
	}()

	s.logger.Info("session started")

	s.conn.SetReadLimit(protocol.MaxEventSize)
	s.extendReadDeadline()
	s.conn.SetPongHandler(func(string) error {
		s.extendReadDeadline()
		return nil
	})

	if err := s.flush(); err != nil {
		s.logger.Error("initial paint failed", "error", err)
		return
	}

	go s.heartbeat()
	s.readLoop()
}

func (s *Session) extendReadDeadline() {
	s.conn.SetReadDeadline(time.Now().Add(2 * s.config.PingInterval))
}

// readLoop reads and applies client events one at a time.
func (s *Session) readLoop() {
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) && !s.closed.Load() {
				s.logger.Error("read error", "error", err)
			}
			return
		}
		s.extendReadDeadline()

		s.handleMessage(msg)
		if err := s.flush(); err != nil {
			s.logger.Error("write error", "error", err)
			return
		}
	}
}

// handleMessage decodes one client event and dispatches it on its target.
func (s *Session) handleMessage(data []byte) {
	ev, err := protocol.DecodeEvent(data)
	if err != nil {
		s.reportError(err)
		return
	}

	el, ok := dom.Resolve(s.doc.Body(), ev.Path).(dom.Element)
	if !ok {
		s.reportError(errors.New(errors.CodeInvalidMessage).
			WithDetailf("path %v does not resolve to an element", ev.Path))
		return
	}

	s.events++
	s.metrics.RecordEvent(ev.Type)
	s.dispatch(el, ev)
}

// dispatch runs the element's listeners under a span, recovering from
// handler panics.
func (s *Session) dispatch(el dom.Element, ev *protocol.Event) {
	ctx, span := s.tracer.Start(context.Background(), "ffui.event",
		trace.WithAttributes(
			attribute.String("ffui.session_id", s.ID),
			attribute.String("ffui.event_type", ev.Type),
			attribute.IntSlice("ffui.event_path", ev.Path),
		),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic",
				"panic", r,
				"type", ev.Type,
				"path", ev.Path,
				"stack", string(debug.Stack()))
			err := errors.Newf(errors.CategoryRuntime, "handler panic: %v", r)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.reportError(err)
		}
	}()

	s.logger.Debug("event", "type", ev.Type, "path", ev.Path)
	s.driver.WithinContext(ctx, func() {
		el.Dispatch(&dom.Event{Type: ev.Type, Value: ev.Value, Target: el})
	})
}

// reportError queues err for the next batch.
func (s *Session) reportError(err error) {
	if errors.CodeOf(err) == errors.CodeInvalidMessage {
		s.logger.Warn("rejected event", "error", err)
	}
	s.errs = append(s.errs, err)
}

// flush sends everything recorded since the last batch. Nothing is sent when
// nothing happened.
func (s *Session) flush() error {
	if len(s.pending) == 0 && len(s.errs) == 0 {
		return nil
	}

	s.seq++
	batch := protocol.NewBatch(s.seq, s.pending)
	if len(s.errs) > 0 {
		batch.Error = protocol.NewErrorBatch(s.seq, s.errs[0]).Error
	}
	s.pending = nil
	s.errs = nil

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteJSON(batch)
}

// heartbeat pings the client until the session closes.
func (s *Session) heartbeat() {
	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(s.config.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}

		case <-s.done:
			return
		}
	}
}

// Close ends the session. It is safe to call from any goroutine and more
// than once.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)

	s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	s.conn.Close()
}
