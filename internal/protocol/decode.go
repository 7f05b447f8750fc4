package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse decodes a single workflow-command line back into a Command. Property
// values and the message come back unescaped. A trailing line terminator is
// tolerated.
func Parse(line string) (Command, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if !strings.HasPrefix(line, marker) {
		return Command{}, ErrNotCommand
	}
	rest := line[len(marker):]

	// Raw ':' cannot occur in the name or in escaped property values, so the
	// first marker in rest closes the head even when the message contains one.
	end := strings.Index(rest, marker)
	if end < 0 {
		return Command{}, fmt.Errorf("%w: missing closing %q", ErrMalformedCommand, marker)
	}
	head := rest[:end]
	msg := rest[end+len(marker):]

	name := head
	var props []Property
	if sp := strings.IndexByte(head, ' '); sp >= 0 {
		name = head[:sp]
		var err error
		props, err = parseProperties(head[sp+1:])
		if err != nil {
			return Command{}, err
		}
	}

	cmd := Command{Name: name, Properties: props, Message: UnescapeData(msg)}
	if err := cmd.Validate(); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

func parseProperties(s string) ([]Property, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty property list", ErrMalformedCommand)
	}
	segments := strings.Split(s, ",")
	props := make([]Property, 0, len(segments))
	for _, seg := range segments {
		key, value, ok := strings.Cut(seg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: property %q", ErrMalformedCommand, seg)
		}
		props = append(props, Property{Key: key, Value: UnescapeProperty(value)})
	}
	return props, nil
}

// ParseAll scans r line by line and returns the workflow commands it
// contains, in order. Lines that are not valid command lines are plain log
// output to the host runner and are passed over, matching its behavior.
func ParseAll(r io.Reader) ([]Command, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var cmds []Command
	for sc.Scan() {
		cmd, err := Parse(sc.Text())
		if err != nil {
			continue
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return cmds, fmt.Errorf("protocol: scan: %w", err)
	}
	return cmds, nil
}

// maxLineBytes bounds a single scanned line. Escaped multi-line messages can
// grow well past bufio's default.
const maxLineBytes = 1 << 20
