package ipc

import (
	"context"
	"log/slog"
	"net"
	"sync"
)

// Handler processes a received envelope. Return nil to send no reply.
type Handler func(env Envelope) (*Envelope, error)

// Connection is one game client session. Player is empty until the hello
// handshake names it.
type Connection struct {
	conn     net.Conn
	handlers map[string]Handler
	Player   string

	writeMu sync.Mutex
}

func NewConnection(conn net.Conn, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{
		conn:     conn,
		handlers: handlers,
	}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

// Send marshals data into an envelope of msgType and writes it. Safe for
// concurrent use with the read loop's replies.
func (c *Connection) Send(msgType string, data any) error {
	env, err := NewEnvelope(msgType, data)
	if err != nil {
		return err
	}
	return c.write(env)
}

func (c *Connection) write(env Envelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return WriteEnvelope(c.conn, env)
}

// ReadLoop dispatches envelopes until the client disconnects or ctx is
// cancelled, then closes the connection. A failing handler is reported to
// the client as an error message and the loop keeps going.
func (c *Connection) ReadLoop(ctx context.Context) {
	stop := context.AfterFunc(ctx, func() { c.conn.Close() })
	defer stop()
	defer c.conn.Close()

	for {
		env, err := ReadEnvelope(c.conn)
		if err != nil {
			slog.Info("connection read ended", "player", c.Player, "error", err)
			return
		}

		handler, ok := c.handlers[env.Type]
		if !ok {
			slog.Warn("no handler for message type", "type", env.Type)
			continue
		}

		resp, err := handler(env)
		if err != nil {
			slog.Error("handler error", "type", env.Type, "player", c.Player, "error", err)
			if err := c.Send(TypeError, ErrorMessage{Type: env.Type, Error: err.Error()}); err != nil {
				slog.Error("failed to report handler error", "type", env.Type, "error", err)
				return
			}
			continue
		}

		if resp != nil {
			if err := c.write(*resp); err != nil {
				slog.Error("failed to send response", "type", resp.Type, "error", err)
				return
			}
			slog.Debug("sent response", "type", resp.Type, "player", c.Player)
		}
	}
}
