package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danmuck/actionctl/internal/protocol"
	"github.com/danmuck/actionctl/internal/protocol/envfile"
)

func newIssueCommandCmd() *cobra.Command {
	var props []string
	cmd := &cobra.Command{
		Use:   "issue-command <name> [message]",
		Short: "Emit a raw workflow command line",
		Long: `The generic form of the named commands: builds a command from a name,
repeated --prop key=value properties, and an optional message, and emits
the encoded line.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := protocol.Command{Name: args[0]}
			if len(args) == 2 {
				c.Message = args[1]
			}
			for _, p := range props {
				key, value, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("cli: invalid property %q: want key=value", p)
				}
				c.Properties = append(c.Properties, protocol.NewProperty(key, value))
			}
			return service(cmd).Issue(c)
		},
	}
	cmd.Flags().StringArrayVarP(&props, "prop", "p", nil, "command property as key=value (repeatable)")
	return cmd
}

func newParseCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Decode workflow command lines or side-channel files",
		Long: `Reads the file argument, or stdin without one. With --format commands
the input is a step's output stream: command lines are decoded and plain
lines skipped. With --format env-file the input is a side-channel file of
NAME=value and heredoc entries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			out := cmd.OutOrStdout()

			switch format {
			case "commands":
				cmds, err := protocol.ParseAll(in)
				if err != nil {
					return err
				}
				for _, c := range cmds {
					fmt.Fprintln(out, describeCommand(c))
				}
				return nil
			case "env-file":
				assigns, err := envfile.Parse(in)
				if err != nil {
					return err
				}
				for _, a := range assigns {
					fmt.Fprintf(out, "%s=%q\n", a.Name, a.Value)
				}
				return nil
			default:
				return fmt.Errorf("cli: unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "commands", "input format: commands or env-file")
	return cmd
}

func describeCommand(c protocol.Command) string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, p := range c.Properties {
		fmt.Fprintf(&b, " %s=%q", p.Key, p.Value)
	}
	fmt.Fprintf(&b, " %q", c.Message)
	return b.String()
}
