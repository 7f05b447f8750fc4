package protocol

import "strings"

// EscapeData escapes a command message. '%' is replaced first so the escape
// sequences introduced for CR and LF are not themselves re-escaped.
func EscapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// EscapeProperty escapes a property value: the data rules plus the property
// delimiters ':' and ','.
func EscapeProperty(s string) string {
	s = EscapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")
	return s
}

// UnescapeData inverts EscapeData. '%' is restored last, mirroring the
// escape order, so data that contained literal escape sequences round-trips.
func UnescapeData(s string) string {
	s = strings.ReplaceAll(s, "%0A", "\n")
	s = strings.ReplaceAll(s, "%0D", "\r")
	s = strings.ReplaceAll(s, "%25", "%")
	return s
}

// UnescapeProperty inverts EscapeProperty.
func UnescapeProperty(s string) string {
	s = strings.ReplaceAll(s, "%2C", ",")
	s = strings.ReplaceAll(s, "%3A", ":")
	return UnescapeData(s)
}
