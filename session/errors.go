package session

import "errors"

var (
	ErrGameAlreadyWon   = errors.New("game already has a winner")
	ErrNotPieceOwner    = errors.New("it's not this piece's turn")
	ErrNotLocalPlayer   = errors.New("piece is not controlled by the local player")
	ErrMalformedMessage = errors.New("malformed message")
)
