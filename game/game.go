package game

import "github.com/judgegodwins/tapatan-client/util"

// PlayerSlot is one of the two fixed seats in a room. SlotNone stands for
// "no player", used for an unassigned local slot and a game with no winner.
type PlayerSlot int

const (
	SlotNone PlayerSlot = 0
	Slot1    PlayerSlot = 1
	Slot2    PlayerSlot = 2
)

// Position is an opaque board coordinate. Its domain belongs to the room's
// rules engine; the client only carries it back and forth.
type Position string

type Piece struct {
	ID       int        `json:"id"`
	Player   PlayerSlot `json:"player" validate:"min=1,max=2"`
	Position Position   `json:"position"`
}

// Player is one roster entry, keyed in the snapshot by a session-assigned
// participant id rather than by slot.
type Player struct {
	Number PlayerSlot `json:"number" validate:"min=1,max=2"`
	Name   string     `json:"name"`
}

// Named reports whether the player has actually picked a name, as opposed
// to still carrying the room's "Player <slot>" placeholder.
func (p Player) Named() bool {
	return p.Name != "" && p.Name != util.PlaceholderName(int(p.Number))
}

// Snapshot is a full authoritative state push from the room.
type Snapshot struct {
	Pieces        []Piece           `json:"pieces" validate:"dive"`
	CurrentPlayer PlayerSlot        `json:"currentPlayer" validate:"required,min=1,max=2"`
	Winner        PlayerSlot        `json:"winner" validate:"min=0,max=2"`
	Players       map[string]Player `json:"players" validate:"dive"`
}
