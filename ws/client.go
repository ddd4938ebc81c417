package ws

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	pongWait = 10 * time.Second

	pingInterval = (pongWait * 8) / 10
)

var ErrConnectionClosed = errors.New("connection closed")

// Client is one connection epoch to the room. The manager replaces it on
// every reconnect.
type Client struct {
	SocketID   string
	manager    *Manager
	connection *websocket.Conn
	egress     chan Event
	readErr    chan error
	writeErr   chan error
	err        chan error
	done       chan struct{}
}

func newClient(conn *websocket.Conn, m *Manager) *Client {
	return &Client{
		SocketID:   uuid.NewString(),
		connection: conn,
		manager:    m,
		egress:     make(chan Event),
		readErr:    make(chan error, 1), // readMessages listens on this channel for errors that should cause the goroutine to exit
		writeErr:   make(chan error, 1), // writeMessages listens on this channel for errors that should cause the goroutine to exit
		err:        make(chan error, 2), // listenForErrors tears the epoch down on the first error from either pump
		done:       make(chan struct{}),
	}
}

// Send queues an event for delivery on this connection epoch.
func (c *Client) Send(e Event) error {
	select {
	case c.egress <- e:
		return nil
	case <-c.done:
		return ErrConnectionClosed
	}
}

// Sends an error on the respective channels for writeMessages and
// listenForErrors to exit.
func (c *Client) readError(err error) {
	c.writeErr <- err
	c.err <- err
}

// Sends an error on the respective channels for readMessages and
// listenForErrors to exit.
func (c *Client) writeError(err error) {
	c.readErr <- err
	c.err <- err
}

func (c *Client) readMessages() {
	if err := c.connection.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.readError(err)
		return
	}

	c.connection.SetPongHandler(c.pongHandler)

	for {
		select {
		case <-c.readErr:
			return
		default:
			_, payload, err := c.connection.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					c.manager.logger.Warn("unexpected closure of socket connection", "error", err)
				}
				c.readError(err)
				return
			}

			var evt Event
			if err := json.Unmarshal(payload, &evt); err != nil {
				c.manager.logger.Warn("discarding frame that is not a valid event", "error", err)
				continue
			}

			if err := c.manager.routeEvents(evt, c); err != nil {
				c.manager.logger.Warn("discarding event", "type", evt.Type, "trace_id", evt.TraceID, "error", err)
			}
		}
	}
}

func (c *Client) writeMessages() {
	ticker := time.NewTicker(pingInterval)

	defer func() {
		ticker.Stop()
	}()

	for {
		select {
		case event := <-c.egress:
			message, err := json.Marshal(event)

			if err != nil {
				c.manager.logger.Warn("cannot marshal outbound event", "type", event.Type, "error", err)
				continue
			}

			if err := c.connection.WriteMessage(websocket.TextMessage, message); err != nil {
				c.manager.logger.Warn("write failed", "error", err)
				c.writeError(err)
				return
			}
		case <-ticker.C:
			if err := c.connection.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				c.manager.logger.Warn("cannot send ping message", "error", err)
				c.writeError(err)
				return
			}
		case <-c.writeErr:
			return
		}
	}
}

// Waits for the first pump error, then tears the epoch down.
func (c *Client) listenForErrors() {
	err := <-c.err
	close(c.done)
	c.connection.Close()
	c.manager.clientGone(c, err)
}

func (c *Client) pongHandler(pongMsg string) error {
	return c.connection.SetReadDeadline(time.Now().Add(pongWait))
}

// close tears the epoch down from the outside (context cancellation).
func (c *Client) close() {
	select {
	case c.err <- ErrConnectionClosed:
	default:
	}
	c.connection.Close()
}
