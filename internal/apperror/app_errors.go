package apperror

import "errors"

var (
	ErrNoSuchCoordinate = errors.New("no such coordinate")
	ErrMalformedBoard   = errors.New("malformed board")
	ErrTerminalBoard    = errors.New("board has no legal moves")
	ErrInvalidMover     = errors.New("mover must be a player")
	ErrLabelNotFound    = errors.New("label not found")
)
