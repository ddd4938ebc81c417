package ws

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/judgegodwins/tapatan-client/game"
)

// Event is the wire envelope for every message in either direction.
type Event struct {
	Type    string          `json:"type"`
	TraceID string          `json:"trace_id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EventHandler handles one inbound event on the connection it arrived on.
type EventHandler func(e Event, c *Client) error

const (
	// authority -> client
	EventGameState = "gameState"
	EventError     = "error"

	// client -> authority
	EventName  = "name"
	EventMove  = "move"
	EventReset = "reset"
)

type PayloadError struct {
	Reason string `json:"reason"`
}

type PayloadName struct {
	PlayerName string `json:"playerName"`
}

type PayloadMove struct {
	Piece       game.Piece    `json:"piece"`
	NewPosition game.Position `json:"newPosition"`
}

// PlayerRef seeds the local slot assignment; the room sends it only on
// snapshots addressed to this participant.
type PlayerRef struct {
	Number game.PlayerSlot `json:"number" validate:"required,min=1,max=2"`
}

type PayloadGameState struct {
	State      *game.Snapshot `json:"state" validate:"required"`
	YourPlayer *PlayerRef     `json:"yourPlayer,omitempty"`
}

// NewEvent wraps a payload in the wire envelope with a fresh trace id.
func NewEvent(evtType string, payload any) (Event, error) {
	b, err := json.Marshal(payload)

	if err != nil {
		return Event{}, err
	}

	evt := Event{
		Type:    evtType,
		TraceID: uuid.NewString(),
		Payload: b,
	}

	return evt, nil
}
