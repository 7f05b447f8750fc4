package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newSetEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-env <name> <value>",
		Short: "Set an environment variable for subsequent job steps",
		Long: `Creates or updates an environment variable for the steps that run after
this one; the running step does not see the new value. The env-file
channel is used when the runner provides one, the legacy stdout command
otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).SetEnv(args[0], args[1])
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <key>",
		Short: "Forward an existing environment variable to subsequent steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).ExportEnv(args[0])
		},
	}
}

func newSetOutputCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-output <name> <value>",
		Short: "Publish an output parameter of the running action",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).SetOutput(args[0], args[1])
		},
	}
}

func newAddPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-path <path>",
		Short: "Prepend a directory to the PATH of subsequent steps",
		Long: `Relative paths are expanded to their absolute form before emission; the
directory does not have to exist yet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			return service(cmd).AddPath(abs)
		},
	}
}

func newSaveStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-state <name> <value>",
		Short: "Persist state for the action's later execution phases",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service(cmd).SaveState(args[0], args[1])
		},
	}
}

func newGetStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-state <name>",
		Short: "Print state saved by an earlier phase of this action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), service(cmd).State(args[0]))
			return nil
		},
	}
}

func newGetInputCmd() *cobra.Command {
	var required bool
	cmd := &cobra.Command{
		Use:   "get-input <name>",
		Short: "Print the trimmed value of a step input",
		Long: `Absent inputs print as an empty line; the host injects nothing to tell
them apart from empty ones. With --required, an absent or empty input is
an error instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service(cmd)
			if required {
				v, err := svc.RequiredInput(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.Input(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&required, "required", "r", false, "fail when the input is absent or empty")
	return cmd
}

func newIsDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is-debug",
		Short: "Report whether runner step debug logging is on",
		Long: `Prints true or false. The exit status is zero exactly when debug
logging is on, so the command works directly in shell conditionals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if service(cmd).IsDebug() {
				fmt.Fprintln(cmd.OutOrStdout(), "true")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "false")
			return ExitError{Code: 1}
		},
	}
}
