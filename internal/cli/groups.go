package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/actionctl/internal/tools"
)

func newStartGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start-group <name>",
		Short: "Open a foldable group in the step log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).StartGroup(args[0])
		},
	}
}

func newEndGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-group",
		Short: "Close the current log group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).EndGroup()
		},
	}
}

func newGroupCmd(runner tools.CommandRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "group <name> -- <command> [args...]",
		Short: "Run a command with its output folded under a named group",
		Long: `Opens the group, runs the command with stdin, stdout, and stderr passed
through, closes the group, and exits with the command's exit status.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service(cmd)
			var code int
			err := svc.Group(args[0], func() error {
				c, err := runner.Run(tools.RunSpec{
					Name:   args[1],
					Args:   args[2:],
					Stdin:  cmd.InOrStdin(),
					Stdout: cmd.OutOrStdout(),
					Stderr: cmd.ErrOrStderr(),
				})
				code = c
				return err
			})
			if err != nil {
				return err
			}
			if code != 0 {
				log.Debug().Str("name", args[0]).Int("exit", code).Msg("grouped command failed")
				return ExitError{Code: code}
			}
			return nil
		},
	}
}
