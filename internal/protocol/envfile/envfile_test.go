package envfile

import (
	"errors"
	"strings"
	"testing"
)

func fixedDelimiter(s string) func() string {
	return func() string { return s }
}

func TestAssignmentSingleLine(t *testing.T) {
	enc := NewEncoder()
	got, err := enc.Assignment("FOO", "bar")
	if err != nil {
		t.Fatalf("Assignment: %v", err)
	}
	if got != "FOO=bar\n" {
		t.Fatalf("entry = %q, want %q", got, "FOO=bar\n")
	}
}

func TestAssignmentEmptyValue(t *testing.T) {
	enc := NewEncoder()
	got, err := enc.Assignment("FOO", "")
	if err != nil {
		t.Fatalf("Assignment: %v", err)
	}
	if got != "FOO=\n" {
		t.Fatalf("entry = %q, want %q", got, "FOO=\n")
	}
}

func TestAssignmentValueMayContainEquals(t *testing.T) {
	enc := NewEncoder()
	got, err := enc.Assignment("FOO", "a=b=c")
	if err != nil {
		t.Fatalf("Assignment: %v", err)
	}
	if got != "FOO=a=b=c\n" {
		t.Fatalf("entry = %q, want %q", got, "FOO=a=b=c\n")
	}
}

func TestAssignmentHeredoc(t *testing.T) {
	enc := Encoder{newDelimiter: fixedDelimiter("ghadelimiter_test")}
	got, err := enc.Assignment("NOTES", "first\nsecond")
	if err != nil {
		t.Fatalf("Assignment: %v", err)
	}
	want := "NOTES<<ghadelimiter_test\nfirst\nsecond\nghadelimiter_test\n"
	if got != want {
		t.Fatalf("entry = %q, want %q", got, want)
	}
}

func TestAssignmentRandomDelimitersDiffer(t *testing.T) {
	enc := NewEncoder()
	a, err := enc.Assignment("A", "x\ny")
	if err != nil {
		t.Fatalf("Assignment: %v", err)
	}
	b, err := enc.Assignment("A", "x\ny")
	if err != nil {
		t.Fatalf("Assignment: %v", err)
	}
	if a == b {
		t.Fatalf("two heredoc entries reused a delimiter:\n%s", a)
	}
	if !strings.Contains(a, heredocMarker+delimiterPrefix) {
		t.Fatalf("entry %q missing %q delimiter", a, delimiterPrefix)
	}
}

func TestAssignmentDelimiterCollision(t *testing.T) {
	enc := Encoder{newDelimiter: fixedDelimiter("stuck")}
	_, err := enc.Assignment("FOO", "value with stuck inside\nmore")
	if !errors.Is(err, ErrDelimiterCollision) {
		t.Fatalf("err = %v, want ErrDelimiterCollision", err)
	}
}

func TestAssignmentCollisionRetriesThenSucceeds(t *testing.T) {
	draws := []string{"clash", "clean"}
	enc := Encoder{newDelimiter: func() string {
		d := draws[0]
		if len(draws) > 1 {
			draws = draws[1:]
		}
		return d
	}}
	got, err := enc.Assignment("FOO", "has clash in it\nsecond line")
	if err != nil {
		t.Fatalf("Assignment: %v", err)
	}
	if !strings.HasPrefix(got, "FOO<<clean\n") {
		t.Fatalf("entry = %q, want delimiter from second draw", got)
	}
}

func TestAssignmentRejectsBadNames(t *testing.T) {
	enc := NewEncoder()
	for _, name := range []string{"", "A=B", "A<<B", "A\nB", "A\rB"} {
		if _, err := enc.Assignment(name, "v"); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Assignment(%q) err = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestPathEntry(t *testing.T) {
	got, err := PathEntry("/opt/tool/bin")
	if err != nil {
		t.Fatalf("PathEntry: %v", err)
	}
	if got != "/opt/tool/bin\n" {
		t.Fatalf("entry = %q", got)
	}
	for _, p := range []string{"", "a\nb", "a\rb"} {
		if _, err := PathEntry(p); !errors.Is(err, ErrUnencodableValue) {
			t.Fatalf("PathEntry(%q) err = %v, want ErrUnencodableValue", p, err)
		}
	}
}

func TestParseMixedEntries(t *testing.T) {
	in := "FOO=bar\n\nNOTES<<EOF\nfirst\nsecond\nEOF\nANSWER=42\n"
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Assignment{
		{Name: "FOO", Value: "bar"},
		{Name: "NOTES", Value: "first\nsecond"},
		{Name: "ANSWER", Value: "42"},
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d assignments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("assignment[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseHeredocBodyMayContainEquals(t *testing.T) {
	in := "CFG<<EOF\nkey=value\nother=thing\nEOF\n"
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 1 || got[0].Value != "key=value\nother=thing" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseHeredocEmptyBody(t *testing.T) {
	in := "EMPTY<<EOF\nEOF\n"
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 1 || got[0] != (Assignment{Name: "EMPTY", Value: ""}) {
		t.Fatalf("got %+v", got)
	}
}

func TestParseUnterminatedHeredoc(t *testing.T) {
	_, err := Parse(strings.NewReader("FOO<<EOF\nnever closed\n"))
	if !errors.Is(err, ErrUnterminatedHeredoc) {
		t.Fatalf("err = %v, want ErrUnterminatedHeredoc", err)
	}
}

func TestParseMalformedLine(t *testing.T) {
	for _, in := range []string{"no equals here\n", "=leading\n", "<<EOF\nx\nEOF\n"} {
		if _, err := Parse(strings.NewReader(in)); !errors.Is(err, ErrMalformedEntry) {
			t.Fatalf("Parse(%q) err = %v, want ErrMalformedEntry", in, err)
		}
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	enc := NewEncoder()
	var b strings.Builder
	pairs := []Assignment{
		{Name: "SIMPLE", Value: "one"},
		{Name: "MULTI", Value: "a\nb\nc"},
		{Name: "TRICKY", Value: "x=y, with :: and % marks"},
	}
	for _, p := range pairs {
		entry, err := enc.Assignment(p.Name, p.Value)
		if err != nil {
			t.Fatalf("Assignment(%q): %v", p.Name, err)
		}
		b.WriteString(entry)
	}
	got, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != len(pairs) {
		t.Fatalf("parsed %d assignments, want %d", len(got), len(pairs))
	}
	for i := range pairs {
		if got[i] != pairs[i] {
			t.Fatalf("assignment[%d] = %+v, want %+v", i, got[i], pairs[i])
		}
	}
}
