package workflow

import (
	"fmt"
	"strings"
	"unicode"
)

// Environment variables the host runner sets for a job step. The file
// variables each carry the path of one side channel.
const (
	EnvFileVar    = "GITHUB_ENV"
	PathFileVar   = "GITHUB_PATH"
	OutputFileVar = "GITHUB_OUTPUT"
	StateFileVar  = "GITHUB_STATE"
	DebugVar      = "RUNNER_DEBUG"
)

const (
	inputPrefix   = "INPUT_"
	statePrefix   = "STATE_"
	debugSentinel = "1"
)

// Input returns the trimmed value of the named step input. Absent inputs
// are indistinguishable from empty ones: both read as "".
func (s *Service) Input(name string) string {
	v, _ := s.cfg.Environ(lookupKey(inputPrefix, name))
	return strings.TrimSpace(v)
}

// RequiredInput is Input for inputs the step cannot run without; an absent
// or empty value is an error.
func (s *Service) RequiredInput(name string) (string, error) {
	v := s.Input(name)
	if v == "" {
		return "", fmt.Errorf("%w: %q", ErrInputRequired, name)
	}
	return v, nil
}

// State returns state saved by an earlier execution phase of the same
// action, which the host re-injects through the environment. It is not
// read back from the state file this process appends to. Missing state
// reads as "".
func (s *Service) State(name string) string {
	v, _ := s.cfg.Environ(lookupKey(statePrefix, name))
	return v
}

// IsDebug reports whether the host runs the step with debug logging
// enabled. The comparison is an exact match against the sentinel, not
// general truthy parsing.
func (s *Service) IsDebug() bool {
	v, ok := s.cfg.Environ(DebugVar)
	return ok && v == debugSentinel
}

// lookupKey derives the environment key the host injects for a
// user-facing name: each run of whitespace collapses to one underscore,
// the rest is uppercased, and the channel prefix is prepended. The
// transformation must match the host's injection rule exactly or lookups
// silently miss values that exist.
func lookupKey(prefix, name string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(name))
	b.WriteString(prefix)
	inRun := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
