package cli

import (
	"github.com/spf13/cobra"

	"github.com/danmuck/actionctl/internal/workflow"
)

type annotationFlags struct {
	title     string
	file      string
	line      int
	endLine   int
	col       int
	endColumn int
}

func (f *annotationFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.title, "title", "", "annotation title")
	fs.StringVarP(&f.file, "file", "f", "", "source file the annotation points at")
	fs.IntVarP(&f.line, "line", "l", 0, "start line")
	fs.IntVar(&f.endLine, "end-line", 0, "end line")
	fs.IntVarP(&f.col, "col", "c", 0, "start column")
	fs.IntVar(&f.endColumn, "end-column", 0, "end column")
}

func (f *annotationFlags) annotation() workflow.Annotation {
	return workflow.Annotation{
		Title:     f.title,
		File:      f.file,
		Line:      f.line,
		EndLine:   f.endLine,
		Col:       f.col,
		EndColumn: f.endColumn,
	}
}

func newAnnotateCmd(use, short string, emit func(*workflow.Service, string, workflow.Annotation) error) *cobra.Command {
	var flags annotationFlags
	cmd := &cobra.Command{
		Use:   use + " <message>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(service(cmd), args[0], flags.annotation())
		},
	}
	flags.register(cmd)
	return cmd
}

func newDebugCmd() *cobra.Command {
	return newAnnotateCmd("debug", "Emit a debug message (visible with step debug logging on)", (*workflow.Service).Debug)
}

func newNoticeCmd() *cobra.Command {
	return newAnnotateCmd("notice", "Emit a notice annotation", (*workflow.Service).Notice)
}

func newWarningCmd() *cobra.Command {
	return newAnnotateCmd("warning", "Emit a warning annotation", (*workflow.Service).Warning)
}

func newErrorCmd() *cobra.Command {
	return newAnnotateCmd("error", "Emit an error annotation", (*workflow.Service).Error)
}
