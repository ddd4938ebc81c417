package game

import (
	"sort"

	"github.com/samber/lo"

	"github.com/judgegodwins/tapatan-client/util"
)

// Readiness says whether play may begin, derived purely from the view.
type Readiness int

const (
	NamePending Readiness = iota
	WaitingForOpponent
	WaitingForOpponentName
	Ready
)

func (r Readiness) String() string {
	return []string{"name_pending", "waiting_for_opponent", "waiting_for_opponent_name", "ready"}[r]
}

func (r Readiness) EnumIndex() int {
	return int(r)
}

// Readiness recomputes the derived readiness state. The local name check
// comes first: a client that has not named itself is NamePending no matter
// what the roster looks like.
func (v SessionView) Readiness() Readiness {
	if !v.MyNameSubmitted {
		return NamePending
	}

	if len(v.Players) < 2 {
		return WaitingForOpponent
	}

	unnamed := lo.SomeBy(lo.Values(v.Players), func(p Player) bool {
		return !p.Named()
	})

	if unnamed {
		return WaitingForOpponentName
	}

	return Ready
}

func (v SessionView) IsMyTurn() bool {
	return v.MyPlayerSlot != SlotNone && v.MyPlayerSlot == v.CurrentPlayer
}

// PlayerLabel returns the display name for a slot. When no roster entry has
// named that slot the label falls back to the room's own placeholder, the
// exact string Player.Named treats as "not named".
func (v SessionView) PlayerLabel(slot PlayerSlot) string {
	ids := lo.Keys(v.Players)
	sort.Strings(ids)

	for _, id := range ids {
		if p := v.Players[id]; p.Number == slot && p.Name != "" {
			return p.Name
		}
	}

	return util.PlaceholderName(int(slot))
}

// WinnerName returns the winning player's display name, or "" while the
// game is still running.
func (v SessionView) WinnerName() string {
	if v.Winner == SlotNone {
		return ""
	}

	return v.PlayerLabel(v.Winner)
}
