package workflow

import "github.com/danmuck/actionctl/internal/protocol"

// Annotation carries the optional source-position properties of a log
// annotation. Zero fields are omitted from the encoded command.
type Annotation struct {
	Title     string
	File      string
	Line      int
	EndLine   int
	Col       int
	EndColumn int
}

// properties renders the annotation in the property order the host
// displays: title, file, line, endLine, col, endColumn.
func (a Annotation) properties() []protocol.Property {
	var props []protocol.Property
	if a.Title != "" {
		props = append(props, protocol.NewProperty("title", a.Title))
	}
	if a.File != "" {
		props = append(props, protocol.NewProperty("file", a.File))
	}
	if a.Line > 0 {
		props = append(props, protocol.NewIntProperty("line", a.Line))
	}
	if a.EndLine > 0 {
		props = append(props, protocol.NewIntProperty("endLine", a.EndLine))
	}
	if a.Col > 0 {
		props = append(props, protocol.NewIntProperty("col", a.Col))
	}
	if a.EndColumn > 0 {
		props = append(props, protocol.NewIntProperty("endColumn", a.EndColumn))
	}
	return props
}

// Debug emits a debug annotation; the host shows it only when step debug
// logging is enabled.
func (s *Service) Debug(message string, ann Annotation) error {
	return s.annotate(protocol.CmdDebug, message, ann)
}

// Notice emits a notice annotation.
func (s *Service) Notice(message string, ann Annotation) error {
	return s.annotate(protocol.CmdNotice, message, ann)
}

// Warning emits a warning annotation.
func (s *Service) Warning(message string, ann Annotation) error {
	return s.annotate(protocol.CmdWarning, message, ann)
}

// Error emits an error annotation.
func (s *Service) Error(message string, ann Annotation) error {
	return s.annotate(protocol.CmdError, message, ann)
}

func (s *Service) annotate(name, message string, ann Annotation) error {
	return s.Issue(protocol.Command{Name: name, Properties: ann.properties(), Message: message})
}
