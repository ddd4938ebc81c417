package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

var ErrNotConnected = errors.New("not connected to room")

// Manager owns the channel to the authoritative room: it dials, routes
// inbound events to registered handlers, exposes Send for outbound events
// and redials with backoff when a connection epoch dies.
type Manager struct {
	serverURL string
	roomID    string
	logger    *slog.Logger
	dialer    *websocket.Dialer
	handlers  map[string]EventHandler
	onOpen    func()
	client    *Client
	sync.RWMutex
}

func NewManager(serverURL, roomID string, logger *slog.Logger) *Manager {
	return &Manager{
		serverURL: serverURL,
		roomID:    roomID,
		logger:    logger,
		dialer:    websocket.DefaultDialer,
		handlers:  make(map[string]EventHandler),
	}
}

// Handle registers the handler for an inbound event type.
func (m *Manager) Handle(evtType string, handler EventHandler) {
	m.Lock()
	defer m.Unlock()
	m.handlers[evtType] = handler
}

// OnOpen registers a hook invoked at the start of every connection epoch,
// before any event from that epoch is routed. The session controller uses
// it to re-seed its view from empty.
func (m *Manager) OnOpen(hook func()) {
	m.Lock()
	defer m.Unlock()
	m.onOpen = hook
}

// Send delivers an event on the current connection epoch.
func (m *Manager) Send(e Event) error {
	m.RLock()
	client := m.client
	m.RUnlock()

	if client == nil {
		return ErrNotConnected
	}

	return client.Send(e)
}

// Run dials the room and keeps a connection alive until ctx is cancelled,
// redialing with capped exponential backoff. Each successful dial starts a
// fresh epoch; the authority re-seeds state by sending a full snapshot.
func (m *Manager) Run(ctx context.Context) error {
	roomURL, err := m.roomURL()
	if err != nil {
		return err
	}

	backoff := initialBackoff

	for {
		conn, _, err := m.dialer.DialContext(ctx, roomURL, nil)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			m.logger.Warn("cannot dial room", "url", roomURL, "error", err)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}

			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = initialBackoff

		client := newClient(conn, m)

		m.Lock()
		m.client = client
		hook := m.onOpen
		m.Unlock()

		m.logger.Info("connected to room", "room", m.roomID, "socket_id", client.SocketID)

		// The write pump must be up before the hook so the hook itself can
		// send; the read pump starts after it so no event of the new epoch
		// is routed before the hook has re-seeded local state.
		go client.writeMessages()
		go client.listenForErrors()

		if hook != nil {
			hook()
		}

		go client.readMessages()

		select {
		case <-client.done:
			// fall through to redial
		case <-ctx.Done():
			client.close()
			<-client.done
			return ctx.Err()
		}
	}
}

func (m *Manager) routeEvents(e Event, c *Client) error {
	m.RLock()
	handler, ok := m.handlers[e.Type]
	m.RUnlock()

	if !ok {
		return fmt.Errorf("cannot handle event of type %q", e.Type)
	}

	return handler(e, c)
}

func (m *Manager) clientGone(client *Client, err error) {
	m.Lock()
	if m.client == client {
		m.client = nil
	}
	m.Unlock()

	m.logger.Warn("connection epoch ended", "socket_id", client.SocketID, "error", err)
}

// roomURL builds the websocket endpoint from the configured server URL.
func (m *Manager) roomURL() (string, error) {
	u, err := url.Parse(m.serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	u.Path = "/ws"
	u.RawQuery = url.Values{"room": {m.roomID}}.Encode()

	return u.String(), nil
}
