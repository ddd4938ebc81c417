package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	first := Snapshot{
		Pieces:        []Piece{{ID: 1, Player: Slot1, Position: "a1"}},
		CurrentPlayer: Slot1,
		Players:       map[string]Player{"a": {Number: Slot1, Name: "Alice"}},
	}

	second := Snapshot{
		Pieces: []Piece{
			{ID: 1, Player: Slot1, Position: "b2"},
			{ID: 2, Player: Slot2, Position: "c3"},
		},
		CurrentPlayer: Slot2,
		Winner:        Slot1,
		Players: map[string]Player{
			"a": {Number: Slot1, Name: "Alice"},
			"b": {Number: Slot2, Name: "Bob"},
		},
	}

	t.Run("replaces authoritative fields wholesale", func(t *testing.T) {
		view := NewSessionView().Apply(first, SlotNone).Apply(second, SlotNone)

		require.Equal(t, second.Pieces, view.Pieces)
		require.Equal(t, second.CurrentPlayer, view.CurrentPlayer)
		require.Equal(t, second.Winner, view.Winner)
		require.Equal(t, second.Players, view.Players)
	})

	t.Run("reapplying the same snapshot changes nothing", func(t *testing.T) {
		once := NewSessionView().Apply(first, Slot1)
		twice := once.Apply(first, Slot1)

		require.Equal(t, once, twice)
	})

	t.Run("slot assignment is sticky", func(t *testing.T) {
		view := NewSessionView().Apply(first, Slot1)
		require.Equal(t, Slot1, view.MyPlayerSlot)

		view = view.Apply(second, SlotNone)
		require.Equal(t, Slot1, view.MyPlayerSlot)

		view = view.Apply(second, Slot2)
		require.Equal(t, Slot1, view.MyPlayerSlot)
	})

	t.Run("preserves local name flag", func(t *testing.T) {
		view := NewSessionView()
		view.MyNameSubmitted = true

		view = view.Apply(second, SlotNone)

		require.True(t, view.MyNameSubmitted)
	})
}

func TestFindPiece(t *testing.T) {
	view := NewSessionView().Apply(Snapshot{
		Pieces: []Piece{
			{ID: 4, Player: Slot1, Position: "a1"},
			{ID: 5, Player: Slot2, Position: "b2"},
		},
		CurrentPlayer: Slot1,
	}, SlotNone)

	piece, ok := view.FindPiece(5)
	require.True(t, ok)
	require.Equal(t, Slot2, piece.Player)

	_, ok = view.FindPiece(9)
	require.False(t, ok)
}
