package interactions

import "errors"

var (
	ErrInvalidInteractionType = errors.New("invalid interaction type")
	ErrInvalidInput           = errors.New("invalid input")
)
