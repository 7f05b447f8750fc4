package protocol

import "errors"

var (
	ErrEmptyCommandName     = errors.New("protocol: empty command name")
	ErrInvalidCommandName   = errors.New("protocol: invalid command name")
	ErrInvalidPropertyKey   = errors.New("protocol: invalid property key")
	ErrDuplicatePropertyKey = errors.New("protocol: duplicate property key")
	ErrNotCommand           = errors.New("protocol: not a command line")
	ErrMalformedCommand     = errors.New("protocol: malformed command line")
)
