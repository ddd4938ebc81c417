package util

import "fmt"

// PlaceholderName is the display name the room uses for a slot whose player
// has not named themselves. The roster fallback label and the named check
// both build on this exact string, so it lives in one place.
func PlaceholderName(slot int) string {
	return fmt.Sprintf("Player %d", slot)
}
