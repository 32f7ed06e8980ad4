// Package feed keeps the scene store up to date from the backend websocket
// or from a static scenario file.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	ws "github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/shockglobe/internal/globe/scene"
	"github.com/Faultbox/shockglobe/internal/logger"
)

// Message types understood by the client.
const (
	TypeSubscribe        = "subscribe"
	TypeHeatmap          = "globe:heatmap"
	TypeArcs             = "globe:arcs"
	TypeEpicenter        = "globe:epicenter"
	TypeSimulationResult = "simulation:result"
	TypeEventSelected    = "events:selected"
)

const (
	writeWait  = 10 * time.Second
	handshake  = 10 * time.Second
	maxMessage = 8 << 20
)

// DefaultRooms are joined on every connect.
var DefaultRooms = []string{"globe", "simulation", "events"}

// ErrGaveUp is returned by Run once reconnect attempts are exhausted.
var ErrGaveUp = errors.New("feed: reconnect attempts exhausted")

// Sink receives scene updates. *scene.Store implements it.
type Sink interface {
	SetMarkers([]scene.Marker)
	SetArcs([]scene.Arc)
	SetEpicenter(*scene.Epicenter)
	Replace(scene.Snapshot)
}

// Envelope is the wire frame for every message.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// SubscribeMessage is sent after each successful dial.
type SubscribeMessage struct {
	Type  string   `json:"type"`
	Rooms []string `json:"rooms"`
}

// Config controls the connection.
type Config struct {
	URL            string
	Rooms          []string
	ReconnectDelay time.Duration
	MaxReconnects  int
}

// Client reads scene updates from the backend websocket.
type Client struct {
	cfg    Config
	sink   Sink
	dialer *ws.Dialer
	log    *zap.Logger
}

// NewClient creates a client writing into sink.
func NewClient(cfg Config, sink Sink) *Client {
	if len(cfg.Rooms) == 0 {
		cfg.Rooms = DefaultRooms
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 2 * time.Second
	}
	return &Client{
		cfg:    cfg,
		sink:   sink,
		dialer: &ws.Dialer{HandshakeTimeout: handshake},
		log:    logger.Named("feed"),
	}
}

// Run connects and consumes messages until ctx is cancelled (returning nil)
// or MaxReconnects consecutive reconnects fail (returning ErrGaveUp). A
// dropped connection that had been established starts a fresh count.
// A negative MaxReconnects retries forever.
func (c *Client) Run(ctx context.Context) error {
	failures := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		err := c.session(ctx)
		if ctx.Err() != nil {
			return nil
		}

		var connected *sessionError
		if errors.As(err, &connected) {
			failures = 0
			c.log.Warn("feed disconnected", zap.Error(connected.err))
		} else {
			failures++
			c.log.Warn("feed dial failed", zap.Int("attempt", failures), zap.Error(err))
		}

		if c.cfg.MaxReconnects >= 0 && failures > c.cfg.MaxReconnects {
			c.log.Error("giving up on feed", zap.Int("maxReconnects", c.cfg.MaxReconnects))
			return ErrGaveUp
		}

		c.log.Info("reconnecting to feed", zap.Duration("delay", c.cfg.ReconnectDelay))
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.cfg.ReconnectDelay):
		}
	}
}

// sessionError marks a failure after the connection was established.
type sessionError struct{ err error }

func (e *sessionError) Error() string { return e.err.Error() }
func (e *sessionError) Unwrap() error { return e.err }

// session dials once, subscribes and reads until the connection drops.
func (c *Client) session(ctx context.Context) error {
	conn, _, err := c.dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("websocket dial failed: %w", err)
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessage)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(ws.CloseMessage,
				ws.FormatCloseMessage(ws.CloseNormalClosure, ""), time.Now().Add(writeWait))
			_ = conn.Close()
		case <-done:
		}
	}()

	sub, err := json.Marshal(SubscribeMessage{Type: TypeSubscribe, Rooms: c.cfg.Rooms})
	if err != nil {
		return fmt.Errorf("encoding subscribe: %w", err)
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return &sessionError{err}
	}
	if err := conn.WriteMessage(ws.TextMessage, sub); err != nil {
		return &sessionError{fmt.Errorf("subscribe: %w", err)}
	}
	c.log.Info("feed connected", zap.String("url", c.cfg.URL), zap.Strings("rooms", c.cfg.Rooms))

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return &sessionError{err}
		}
		if err := c.Handle(msg); err != nil {
			c.log.Warn("dropping feed message", zap.Error(err))
		}
	}
}

// Handle decodes one envelope and applies it to the sink. Unknown types are
// ignored; decode failures are returned and leave the sink untouched.
func (c *Client) Handle(msg []byte) error {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		return fmt.Errorf("malformed envelope: %w", err)
	}

	switch env.Type {
	case TypeHeatmap:
		var entries []scene.HeatmapEntry
		if err := decode(env, &entries); err != nil {
			return err
		}
		c.sink.SetMarkers(scene.Markers(entries))

	case TypeArcs:
		var arcs []scene.ConnectionArc
		if err := decode(env, &arcs); err != nil {
			return err
		}
		c.sink.SetArcs(scene.Arcs(arcs))

	case TypeEpicenter:
		var ep *scene.Epicenter
		if err := decode(env, &ep); err != nil {
			return err
		}
		c.sink.SetEpicenter(ep)

	case TypeSimulationResult:
		var result scene.SimulationResult
		if err := decode(env, &result); err != nil {
			return err
		}
		c.sink.Replace(result.Snapshot())
		c.log.Info("simulation applied",
			zap.String("id", result.SimulatedEventID),
			zap.Int("markers", len(result.Heatmap)),
			zap.Int("arcs", len(result.Arcs)))

	case TypeEventSelected:
		var ev *scene.Event
		if err := decode(env, &ev); err != nil {
			return err
		}
		if ev == nil {
			c.sink.SetEpicenter(nil)
			return nil
		}
		c.sink.SetEpicenter(ev.Epicenter())

	default:
		c.log.Debug("ignoring feed message", zap.String("type", env.Type))
	}
	return nil
}

func decode(env Envelope, v any) error {
	data := env.Data
	if len(data) == 0 {
		data = []byte("null")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", env.Type, err)
	}
	return nil
}
