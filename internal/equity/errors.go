package equity

import "errors"

// Input validation errors. Every error returned by Validate wraps one of these.
var (
	ErrInvalidHand   = errors.New("hand must be exactly two valid cards")
	ErrInvalidBoard  = errors.New("board must be at most five valid cards")
	ErrDuplicateCard = errors.New("duplicate card")
	ErrPlayerCount   = errors.New("player count out of range")
)
