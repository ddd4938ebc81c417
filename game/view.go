package game

import "github.com/samber/lo"

// SessionView is the client's local copy of the room state. The room owns
// Pieces, CurrentPlayer, Winner and Players; MyPlayerSlot and
// MyNameSubmitted are the only locally-owned fields.
type SessionView struct {
	Pieces        []Piece
	CurrentPlayer PlayerSlot
	Winner        PlayerSlot
	Players       map[string]Player

	MyPlayerSlot    PlayerSlot
	MyNameSubmitted bool
}

func NewSessionView() SessionView {
	return SessionView{Players: make(map[string]Player)}
}

// Apply replaces the authoritative fields wholesale with the snapshot's
// values and returns the next view. It never reads the previous
// authoritative fields, so re-applying a duplicate snapshot changes nothing.
//
// The you argument carries the room's explicit "this is you" assignment, or
// SlotNone when the message had none. The assignment is sticky: the first
// one wins for the lifetime of the connection epoch.
func (v SessionView) Apply(s Snapshot, you PlayerSlot) SessionView {
	next := v
	next.Pieces = s.Pieces
	next.CurrentPlayer = s.CurrentPlayer
	next.Winner = s.Winner
	next.Players = s.Players

	if next.MyPlayerSlot == SlotNone {
		next.MyPlayerSlot = you
	}

	return next
}

// FindPiece looks a piece up by id in the current board.
func (v SessionView) FindPiece(id int) (Piece, bool) {
	return lo.Find(v.Pieces, func(p Piece) bool {
		return p.ID == id
	})
}
