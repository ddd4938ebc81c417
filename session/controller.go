package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/judgegodwins/tapatan-client/game"
	"github.com/judgegodwins/tapatan-client/ws"
)

// Sender delivers outbound events to the room.
type Sender interface {
	Send(e ws.Event) error
}

// Controller owns the local session view. Inbound snapshots and local user
// intents both go through it, so the view only ever changes under its lock:
// snapshots through HandleGameState, the name-submitted flag through
// RequestName, nothing else.
type Controller struct {
	sender   Sender
	validate *validator.Validate
	logger   *slog.Logger
	view     game.SessionView
	sync.RWMutex
}

func NewController(sender Sender, validate *validator.Validate, logger *slog.Logger) *Controller {
	return &Controller{
		sender:   sender,
		validate: validate,
		logger:   logger,
		view:     game.NewSessionView(),
	}
}

// View returns a copy of the current session view, safe to project from.
func (s *Controller) View() game.SessionView {
	s.RLock()
	defer s.RUnlock()
	return s.view
}

// ResetView drops all session state. The connection manager calls this at
// the start of every connection epoch; the room's first snapshot then
// re-seeds the view exactly as on initial connection.
func (s *Controller) ResetView() {
	s.Lock()
	defer s.Unlock()
	s.view = game.NewSessionView()
}

// HandleGameState applies an authoritative snapshot to the view. A payload
// that fails to parse or validate is discarded and the previous view kept;
// a glitched frame must not freeze the session.
func (s *Controller) HandleGameState(e ws.Event, _ *ws.Client) error {
	var payload ws.PayloadGameState

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	you := game.SlotNone
	if payload.YourPlayer != nil {
		you = payload.YourPlayer.Number
	}

	s.Lock()
	s.view = s.view.Apply(*payload.State, you)
	view := s.view
	s.Unlock()

	s.logger.Debug("applied snapshot",
		"readiness", view.Readiness().String(),
		"my_turn", view.IsMyTurn(),
		"players", len(view.Players),
	)

	return nil
}

// HandleError logs an error event from the room; the view is untouched.
func (s *Controller) HandleError(e ws.Event, _ *ws.Client) error {
	var payload ws.PayloadError

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	s.logger.Warn("room reported an error", "reason", payload.Reason, "trace_id", e.TraceID)

	return nil
}

// RequestMove gates a move intent against the local view and, when legal,
// sends it to the room. The local board is not updated here: the next
// snapshot is the sole source of the post-move truth.
func (s *Controller) RequestMove(piece game.Piece, newPosition game.Position) error {
	s.RLock()
	view := s.view
	s.RUnlock()

	if view.Winner != game.SlotNone {
		return ErrGameAlreadyWon
	}

	if piece.Player != view.CurrentPlayer {
		return ErrNotPieceOwner
	}

	if piece.Player != view.MyPlayerSlot {
		return ErrNotLocalPlayer
	}

	evt, err := ws.NewEvent(ws.EventMove, ws.PayloadMove{Piece: piece, NewPosition: newPosition})

	if err != nil {
		return err
	}

	return s.sender.Send(evt)
}

// RequestReset always goes out; whether a restart is allowed is the room's
// call, answered by the next snapshot.
func (s *Controller) RequestReset() error {
	evt, err := ws.NewEvent(ws.EventReset, struct{}{})

	if err != nil {
		return err
	}

	return s.sender.Send(evt)
}

// RequestName claims a display name for the local participant. Any string
// is accepted, the empty one included; the room owns name validation. The
// submitted flag is set optimistically, the room does not acknowledge names.
func (s *Controller) RequestName(name string) error {
	evt, err := ws.NewEvent(ws.EventName, ws.PayloadName{PlayerName: name})

	if err != nil {
		return err
	}

	s.Lock()
	s.view.MyNameSubmitted = true
	s.Unlock()

	return s.sender.Send(evt)
}
