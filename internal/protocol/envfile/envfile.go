// Package envfile encodes and decodes entries for the runner's side-channel
// files (environment, output, and state files).
//
// Ownership boundary:
// - single-line NAME=value form
// - heredoc form for values spanning lines, with per-write random delimiters
// - path-file raw entries
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidName         = errors.New("envfile: invalid name")
	ErrUnencodableValue    = errors.New("envfile: value cannot be encoded")
	ErrDelimiterCollision  = errors.New("envfile: delimiter collision")
	ErrMalformedEntry      = errors.New("envfile: malformed entry")
	ErrUnterminatedHeredoc = errors.New("envfile: unterminated heredoc")
)

// Assignment is one decoded NAME=value entry.
type Assignment struct {
	Name  string
	Value string
}

const (
	heredocMarker    = "<<"
	delimiterPrefix  = "ghadelimiter_"
	delimiterRetries = 4
)

// Encoder renders side-channel file entries. Use NewEncoder; the zero value
// has no delimiter source.
type Encoder struct {
	newDelimiter func() string
}

// NewEncoder returns an Encoder drawing random heredoc delimiters.
func NewEncoder() Encoder {
	return Encoder{newDelimiter: randomDelimiter}
}

func randomDelimiter() string {
	return delimiterPrefix + uuid.NewString()
}

// Assignment renders one newline-terminated NAME=value entry. Values that
// contain line terminators use the heredoc form:
//
//	NAME<<delimiter
//	value
//	delimiter
//
// The delimiter is random per write and re-drawn if it collides with the
// name or value; the retry budget guards against a broken delimiter source.
func (e Encoder) Assignment(name, value string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if !strings.ContainsAny(value, "\r\n") {
		return name + "=" + value + "\n", nil
	}
	for i := 0; i < delimiterRetries; i++ {
		delim := e.newDelimiter()
		if strings.Contains(value, delim) || strings.Contains(name, delim) {
			continue
		}
		return name + heredocMarker + delim + "\n" + value + "\n" + delim + "\n", nil
	}
	return "", fmt.Errorf("%w: name %q", ErrDelimiterCollision, name)
}

// PathEntry renders one newline-terminated path-file entry. The path-file
// channel has no multi-line form, so line terminators are unencodable.
func PathEntry(path string) (string, error) {
	if path == "" || strings.ContainsAny(path, "\r\n") {
		return "", fmt.Errorf("%w: path %q", ErrUnencodableValue, path)
	}
	return path + "\n", nil
}

// checkName rejects names the runner-side parser cannot split back out:
// '=' and the heredoc marker shift the split point, line terminators break
// the framing.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, "=\r\n") || strings.Contains(name, heredocMarker) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Parse decodes the assignments in a side-channel file, in order, the way
// the host runner does: a heredoc marker before any '=' opens a block that
// runs to the delimiter line, anything else with an '=' is a single-line
// assignment, and blank lines are skipped. Line terminators inside heredoc
// bodies come back normalized to '\n'.
func Parse(r io.Reader) ([]Assignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxEntryBytes)

	var (
		assignments []Assignment
		inHeredoc   bool
		name        string
		delim       string
		body        []string
	)
	for sc.Scan() {
		line := sc.Text()
		if inHeredoc {
			if line == delim {
				assignments = append(assignments, Assignment{Name: name, Value: strings.Join(body, "\n")})
				inHeredoc, body = false, nil
				continue
			}
			body = append(body, line)
			continue
		}
		if line == "" {
			continue
		}

		equals := strings.Index(line, "=")
		heredoc := strings.Index(line, heredocMarker)
		switch {
		case heredoc >= 0 && (equals < 0 || heredoc < equals):
			name = line[:heredoc]
			delim = line[heredoc+len(heredocMarker):]
			if name == "" || delim == "" {
				return nil, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
			}
			inHeredoc = true
		case equals > 0:
			assignments = append(assignments, Assignment{Name: line[:equals], Value: line[equals+1:]})
		default:
			return nil, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("envfile: scan: %w", err)
	}
	if inHeredoc {
		return nil, fmt.Errorf("%w: %q", ErrUnterminatedHeredoc, delim)
	}
	return assignments, nil
}

// maxEntryBytes bounds one scanned line; heredoc bodies arrive line by line
// and are not subject to it as a whole.
const maxEntryBytes = 1 << 20
