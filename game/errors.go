package game

import "errors"

var (
	ErrNoNegotiation     = errors.New("no negotiation in progress")
	ErrNegotiationActive = errors.New("a negotiation is already in progress")
	ErrCannotAfford      = errors.New("not enough coins")
)
