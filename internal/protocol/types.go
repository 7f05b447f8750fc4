package protocol

import (
	"fmt"
	"unicode"
)

// Command is a single workflow command: a name, ordered properties, and a
// free-text message.
type Command struct {
	Name       string
	Properties []Property
	Message    string
}

// Property is one key=value command property. Slice order is emission order.
type Property struct {
	Key   string
	Value string
}

// Validate enforces the command-line token rules. Property values and the
// message are unrestricted; escaping covers them at encode time.
func (c Command) Validate() error {
	if c.Name == "" {
		return ErrEmptyCommandName
	}
	if !validToken(c.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidCommandName, c.Name)
	}
	seen := make(map[string]struct{}, len(c.Properties))
	for _, p := range c.Properties {
		if p.Key == "" || !validKey(p.Key) {
			return fmt.Errorf("%w: %q", ErrInvalidPropertyKey, p.Key)
		}
		if _, dup := seen[p.Key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicatePropertyKey, p.Key)
		}
		seen[p.Key] = struct{}{}
	}
	return nil
}

// validToken reports whether s can stand between the :: markers unescaped.
// Reserved characters, whitespace, and control characters all break the
// single-line frame and are rejected rather than escaped.
func validToken(s string) bool {
	for _, r := range s {
		if r == ':' || r == ',' || unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// validKey is validToken plus '=', the key/value separator.
func validKey(s string) bool {
	if !validToken(s) {
		return false
	}
	for _, r := range s {
		if r == '=' {
			return false
		}
	}
	return true
}
