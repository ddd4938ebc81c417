package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func namedView(players map[string]Player) SessionView {
	view := NewSessionView()
	view.MyNameSubmitted = true
	view.Players = players
	return view
}

func TestReadiness(t *testing.T) {
	t.Run("name pending before local submission", func(t *testing.T) {
		view := NewSessionView()
		view.Players = map[string]Player{
			"a": {Number: Slot1, Name: "Alice"},
			"b": {Number: Slot2, Name: "Bob"},
		}

		require.Equal(t, NamePending, view.Readiness())
	})

	t.Run("waiting for opponent with empty roster", func(t *testing.T) {
		require.Equal(t, WaitingForOpponent, namedView(map[string]Player{}).Readiness())
	})

	t.Run("waiting for opponent with one player", func(t *testing.T) {
		view := namedView(map[string]Player{"a": {Number: Slot1, Name: "Alice"}})

		require.Equal(t, WaitingForOpponent, view.Readiness())
	})

	t.Run("waiting for opponent name with placeholder names", func(t *testing.T) {
		view := namedView(map[string]Player{
			"a": {Number: Slot1, Name: "Player 1"},
			"b": {Number: Slot2, Name: "Player 2"},
		})

		require.Equal(t, WaitingForOpponentName, view.Readiness())
	})

	t.Run("waiting for opponent name with one unnamed player", func(t *testing.T) {
		view := namedView(map[string]Player{
			"a": {Number: Slot1, Name: "Alice"},
			"b": {Number: Slot2, Name: ""},
		})

		require.Equal(t, WaitingForOpponentName, view.Readiness())
	})

	t.Run("ready with two named players", func(t *testing.T) {
		view := namedView(map[string]Player{
			"a": {Number: Slot1, Name: "Alice"},
			"b": {Number: Slot2, Name: "Bob"},
		})

		require.Equal(t, Ready, view.Readiness())
	})
}

func TestIsMyTurn(t *testing.T) {
	view := NewSessionView()
	view.CurrentPlayer = Slot1

	require.False(t, view.IsMyTurn(), "no slot assigned yet")

	view.MyPlayerSlot = Slot1
	require.True(t, view.IsMyTurn())

	view.CurrentPlayer = Slot2
	require.False(t, view.IsMyTurn())
}

func TestPlayerLabel(t *testing.T) {
	t.Run("returns the player's name", func(t *testing.T) {
		view := namedView(map[string]Player{"a": {Number: Slot1, Name: "Alice"}})

		require.Equal(t, "Alice", view.PlayerLabel(Slot1))
	})

	t.Run("falls back to the exact placeholder for an absent slot", func(t *testing.T) {
		view := namedView(map[string]Player{})

		require.Equal(t, "Player 2", view.PlayerLabel(Slot2))
	})

	t.Run("fallback label round-trips as not named", func(t *testing.T) {
		view := namedView(map[string]Player{})

		label := view.PlayerLabel(Slot1)
		player := Player{Number: Slot1, Name: label}

		require.False(t, player.Named())
	})
}

func TestWinnerName(t *testing.T) {
	view := namedView(map[string]Player{
		"a": {Number: Slot1, Name: "Alice"},
		"b": {Number: Slot2, Name: "Bob"},
	})

	require.Equal(t, "", view.WinnerName())

	view.Winner = Slot2
	require.Equal(t, "Bob", view.WinnerName())

	view.Players = map[string]Player{}
	require.Equal(t, "Player 2", view.WinnerName())
}
