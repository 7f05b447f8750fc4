package workflow

import "errors"

var (
	ErrChannelUnavailable = errors.New("workflow: side-channel file not configured")
	ErrChannelWrite       = errors.New("workflow: side-channel write failed")
	ErrInputRequired      = errors.New("workflow: required input missing")
	ErrEnvUnset           = errors.New("workflow: environment variable not set")
)
