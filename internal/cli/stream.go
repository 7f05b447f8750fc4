package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddMaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-mask <value>",
		Short: "Mask a value in the step log",
		Long: `Registers a secret with the runner's log scrubber so later occurrences
are replaced with asterisks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).AddMask(args[0])
		},
	}
}

func newStopCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop-commands <endtoken>",
		Short: "Suspend runner command processing",
		Long: `Later output lines are logged verbatim instead of being interpreted as
commands, until the token is replayed with start-commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).StopCommands(args[0])
		},
	}
}

func newStartCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start-commands <endtoken>",
		Short: "Resume runner command processing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).StartCommands(args[0])
		},
	}
}

func newEchoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "echo <on|off>",
		Short: "Toggle runner echoing of processed commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "on":
				return service(cmd).SetCommandEcho(true)
			case "off":
				return service(cmd).SetCommandEcho(false)
			default:
				return fmt.Errorf("cli: echo takes on or off, got %q", args[0])
			}
		},
	}
}
