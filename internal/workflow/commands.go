package workflow

import (
	"fmt"

	"github.com/danmuck/actionctl/internal/protocol"
	"github.com/danmuck/actionctl/internal/protocol/envfile"
)

// SetEnv exposes an environment variable to subsequent steps in the job.
// The env-file channel is preferred; without one the legacy stdout command
// is emitted instead.
func (s *Service) SetEnv(name, value string) error {
	if path, ok := s.channelPath(EnvFileVar); ok {
		entry, err := s.enc.Assignment(name, value)
		if err != nil {
			return err
		}
		return s.appendChannel(path, entry)
	}
	return s.Issue(protocol.Command{
		Name:       protocol.CmdSetEnv,
		Properties: []protocol.Property{protocol.NewProperty(protocol.PropName, name)},
		Message:    value,
	})
}

// ExportEnv forwards a variable already set in this process to subsequent
// steps. Unlike inputs, a missing variable here is an error: the caller
// named something it expected to exist.
func (s *Service) ExportEnv(key string) error {
	v, ok := s.cfg.Environ(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrEnvUnset, key)
	}
	return s.SetEnv(key, v)
}

// AddPath prepends a directory to the PATH of subsequent steps, via the
// path-file channel or the legacy stdout command.
func (s *Service) AddPath(path string) error {
	if file, ok := s.channelPath(PathFileVar); ok {
		entry, err := envfile.PathEntry(path)
		if err != nil {
			return err
		}
		return s.appendChannel(file, entry)
	}
	return s.Issue(protocol.Command{Name: protocol.CmdAddPath, Message: path})
}

// SetOutput publishes an output parameter of the running action, via the
// output-file channel or the legacy stdout command.
func (s *Service) SetOutput(name, value string) error {
	if path, ok := s.channelPath(OutputFileVar); ok {
		entry, err := s.enc.Assignment(name, value)
		if err != nil {
			return err
		}
		return s.appendChannel(path, entry)
	}
	return s.Issue(protocol.Command{
		Name:       protocol.CmdSetOutput,
		Properties: []protocol.Property{protocol.NewProperty(protocol.PropName, name)},
		Message:    value,
	})
}

// SaveState persists a value for the action's later execution phases. Only
// the state-file channel carries it; the host guarantees that channel
// during real job execution, so a missing one is a configuration error
// rather than a reason to fall back.
func (s *Service) SaveState(name, value string) error {
	path, ok := s.channelPath(StateFileVar)
	if !ok {
		return fmt.Errorf("%w: %s", ErrChannelUnavailable, StateFileVar)
	}
	entry, err := s.enc.Assignment(name, value)
	if err != nil {
		return err
	}
	return s.appendChannel(path, entry)
}

// AddMask registers a secret with the host's log scrubber. Masking has no
// file channel; the stdout command is the only form.
func (s *Service) AddMask(secret string) error {
	return s.Issue(protocol.Command{Name: protocol.CmdAddMask, Message: secret})
}

// StopCommands suspends the host's command processing until the token is
// replayed via StartCommands. The host tracks the suspension; this process
// keeps no state. The token must itself be a valid command name, or the
// matching StartCommands could never resume the stream.
func (s *Service) StopCommands(token string) error {
	if err := (protocol.Command{Name: token}).Validate(); err != nil {
		return err
	}
	return s.Issue(protocol.Command{Name: protocol.CmdStopCommands, Message: token})
}

// StartCommands resumes command processing by issuing the stop token as a
// command of its own. Tokens that cannot form a command name are rejected.
func (s *Service) StartCommands(token string) error {
	return s.Issue(protocol.Command{Name: token})
}

// StartGroup opens a foldable group in the step log.
func (s *Service) StartGroup(name string) error {
	return s.Issue(protocol.Command{Name: protocol.CmdGroup, Message: name})
}

// EndGroup closes the current log group.
func (s *Service) EndGroup() error {
	return s.Issue(protocol.Command{Name: protocol.CmdEndGroup})
}

// Group runs fn inside a foldable log group, closing the group whether or
// not fn fails. fn's error wins over a close failure.
func (s *Service) Group(name string, fn func() error) error {
	if err := s.StartGroup(name); err != nil {
		return err
	}
	fnErr := fn()
	if err := s.EndGroup(); err != nil && fnErr == nil {
		return err
	}
	return fnErr
}

// SetCommandEcho toggles the host's echoing of processed commands into the
// step log.
func (s *Service) SetCommandEcho(on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	return s.Issue(protocol.Command{Name: protocol.CmdEcho, Message: state})
}
