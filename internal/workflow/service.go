package workflow

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/actionctl/internal/protocol"
	"github.com/danmuck/actionctl/internal/protocol/envfile"
)

// Config wires a Service to a process environment and an output stream.
type Config struct {
	// Environ resolves environment variables; tests substitute a fixed map.
	Environ func(key string) (string, bool)
	// Out receives encoded workflow-command lines. The host parses this
	// stream, so nothing else may be written to it.
	Out io.Writer
}

// Service defaults wired to the real process environment and stdout.
func DefaultConfig() Config {
	return Config{
		Environ: os.LookupEnv,
		Out:     os.Stdout,
	}
}

// Service carries out workflow operations against the host runner: it
// emits stdout command lines and appends to the side-channel files the
// host advertises through its environment.
type Service struct {
	cfg Config
	enc envfile.Encoder
}

// Service constructor using process defaults.
func NewService() *Service {
	return NewServiceWithConfig(DefaultConfig())
}

// Service constructor using explicit config; nil fields fall back to the
// process defaults.
func NewServiceWithConfig(cfg Config) *Service {
	if cfg.Environ == nil {
		cfg.Environ = os.LookupEnv
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Service{cfg: cfg, enc: envfile.NewEncoder()}
}

// Issue encodes one command line onto the output stream. The named
// operations below all funnel through here.
func (s *Service) Issue(cmd protocol.Command) error {
	if err := protocol.Encode(s.cfg.Out, cmd); err != nil {
		return err
	}
	log.Debug().Str("command", cmd.Name).Msg("emitted command")
	return nil
}

// channelPath resolves the side-channel file advertised by envVar; an
// absent or empty variable means the channel is unavailable.
func (s *Service) channelPath(envVar string) (string, bool) {
	path, ok := s.cfg.Environ(envVar)
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// appendChannel appends one pre-encoded entry to a channel file. The file
// is open only for the single write; independent steps append to the same
// files, and the host serializes them.
func (s *Service) appendChannel(path, entry string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrChannelWrite, path, err)
	}
	if _, err := io.WriteString(f, entry); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrChannelWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrChannelWrite, path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(entry)).Msg("appended file entry")
	return nil
}
