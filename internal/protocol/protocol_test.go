package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeNoPropertiesEmptyMessage(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Command{Name: CmdWarning}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := buf.String(); got != "::warning::\n" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestEncodeEscapesPropertiesAndMessage(t *testing.T) {
	var buf bytes.Buffer
	cmd := Command{
		Name:       CmdError,
		Properties: []Property{{Key: "file", Value: "a,b"}},
		Message:    "x:y",
	}
	if err := Encode(&buf, cmd); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := buf.String(); got != "::error file=a%2Cb::x:y\n" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestFormatPropertyOrderAndEmptyValue(t *testing.T) {
	cmd := Command{
		Name: CmdWarning,
		Properties: []Property{
			NewProperty("file", "app.js"),
			NewIntProperty("line", 10),
			NewProperty("col", ""),
		},
		Message: "missing semicolon",
	}
	line, err := Format(cmd)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if line != "::warning file=app.js,line=10,col=::missing semicolon" {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestEscapeDataOrdering(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"100%", "100%25"},
		{"a\r\nb", "a%0D%0Ab"},
		{"%0A", "%250A"},
		{"%\n", "%25%0A"},
		{"50% off\nnow", "50%25 off%0Anow"},
	}
	for _, tc := range cases {
		if got := EscapeData(tc.in); got != tc.want {
			t.Fatalf("EscapeData(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeDataRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain",
		"%",
		"%%",
		"%25",
		"%0A",
		"%0D",
		"\n",
		"\r\n",
		"%\n",
		"%0\n",
		"a%0D b%25 c\r\n%",
	}
	for _, in := range cases {
		if got := UnescapeData(EscapeData(in)); got != in {
			t.Fatalf("data round-trip %q -> %q", in, got)
		}
	}
}

func TestEscapePropertyRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a:b",
		"a,b",
		"%3A",
		"%2C",
		"%2",
		":,%\r\n",
		"k=v:w,x",
	}
	for _, in := range cases {
		esc := EscapeProperty(in)
		if strings.ContainsAny(esc, ":,") {
			t.Fatalf("EscapeProperty(%q) = %q still contains a delimiter", in, esc)
		}
		if got := UnescapeProperty(esc); got != in {
			t.Fatalf("property round-trip %q -> %q", in, got)
		}
	}
}

func TestValidateRejectsBadNames(t *testing.T) {
	cases := []struct {
		name string
		want error
	}{
		{"", ErrEmptyCommandName},
		{"set env", ErrInvalidCommandName},
		{"warn:ing", ErrInvalidCommandName},
		{"a,b", ErrInvalidCommandName},
		{"tab\there", ErrInvalidCommandName},
		{"line\nbreak", ErrInvalidCommandName},
	}
	for _, tc := range cases {
		err := Command{Name: tc.name}.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("Validate(name=%q) = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestValidateRejectsBadPropertyKeys(t *testing.T) {
	for _, key := range []string{"", "a=b", "a b", "a:b"} {
		cmd := Command{Name: CmdWarning, Properties: []Property{{Key: key}}}
		if err := cmd.Validate(); !errors.Is(err, ErrInvalidPropertyKey) {
			t.Fatalf("Validate(key=%q) = %v, want ErrInvalidPropertyKey", key, err)
		}
	}
}

func TestValidateRejectsDuplicateKeys(t *testing.T) {
	cmd := Command{
		Name:       CmdWarning,
		Properties: []Property{{Key: "file", Value: "a"}, {Key: "file", Value: "b"}},
	}
	if err := cmd.Validate(); !errors.Is(err, ErrDuplicatePropertyKey) {
		t.Fatalf("expected ErrDuplicatePropertyKey, got %v", err)
	}
}

func TestParseCommandLine(t *testing.T) {
	cmd, err := Parse("::error file=a%2Cb,line=3::x:y\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Name != CmdError {
		t.Fatalf("unexpected name: %q", cmd.Name)
	}
	if v, ok := cmd.Lookup("file"); !ok || v != "a,b" {
		t.Fatalf("unexpected file property: %q ok=%v", v, ok)
	}
	if v, ok := cmd.Lookup("line"); !ok || v != "3" {
		t.Fatalf("unexpected line property: %q ok=%v", v, ok)
	}
	if cmd.Message != "x:y" {
		t.Fatalf("unexpected message: %q", cmd.Message)
	}
}

func TestParseMessageMayContainMarker(t *testing.T) {
	cmd, err := Parse("::group::build::stage one")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Name != CmdGroup || cmd.Message != "build::stage one" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseRejectsNonCommands(t *testing.T) {
	for _, line := range []string{"", "plain output", ":almost::x"} {
		if _, err := Parse(line); !errors.Is(err, ErrNotCommand) {
			t.Fatalf("Parse(%q) = %v, want ErrNotCommand", line, err)
		}
	}
	for _, line := range []string{"::unterminated", "::name prop::x", "::name =v::x"} {
		if _, err := Parse(line); !errors.Is(err, ErrMalformedCommand) {
			t.Fatalf("Parse(%q) = %v, want ErrMalformedCommand", line, err)
		}
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	in := Command{
		Name: CmdNotice,
		Properties: []Property{
			{Key: "title", Value: "odd: value, with\neverything %25"},
			{Key: "file", Value: "main.go"},
		},
		Message: "first\r\nsecond % third",
	}
	line, err := Format(in)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	out, err := Parse(line)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Name != in.Name || out.Message != in.Message {
		t.Fatalf("round-trip mismatch: %+v", out)
	}
	if len(out.Properties) != len(in.Properties) {
		t.Fatalf("property count mismatch: %+v", out.Properties)
	}
	for i := range in.Properties {
		if out.Properties[i] != in.Properties[i] {
			t.Fatalf("property %d mismatch: %+v != %+v", i, out.Properties[i], in.Properties[i])
		}
	}
}

func TestParseAllSkipsPlainLines(t *testing.T) {
	input := strings.Join([]string{
		"checking out sources",
		"::group::install",
		"fetching 12 packages",
		"::endgroup::",
		"::warning file=main.go::unused import",
		"::not closed",
	}, "\n")

	cmds, err := ParseAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse all: %v", err)
	}
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	if got := strings.Join(names, " "); got != "group endgroup warning" {
		t.Fatalf("unexpected commands: %q", got)
	}
}
