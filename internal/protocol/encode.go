package protocol

import (
	"io"
	"strings"
)

// marker opens a command line and separates the head from the message.
const marker = "::"

// Format renders cmd as one workflow-command line without the trailing
// newline: ::name key=value,key=value::message
func Format(cmd Command) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(cmd.Name)
	if len(cmd.Properties) > 0 {
		b.WriteByte(' ')
		for i, p := range cmd.Properties {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(p.Key)
			b.WriteByte('=')
			b.WriteString(EscapeProperty(p.Value))
		}
	}
	b.WriteString(marker)
	b.WriteString(EscapeData(cmd.Message))
	return b.String(), nil
}

// Encode writes cmd to w as a newline-terminated command line. The line is
// rendered first and written whole, so a failed write never leaves a partial
// command ahead of a retry by the caller.
func Encode(w io.Writer, cmd Command) error {
	line, err := Format(cmd)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, line+"\n")
	return err
}
