package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/actionctl/internal/config"
	"github.com/danmuck/actionctl/internal/logging"
	"github.com/danmuck/actionctl/internal/tools"
	"github.com/danmuck/actionctl/internal/workflow"
)

// ExitError carries a specific process exit status through cobra without a
// diagnostic of its own; Execute unwraps it silently.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the CLI and returns the process exit status.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		var exit ExitError
		if errors.As(err, &exit) {
			return exit.Code
		}
		fmt.Fprintf(os.Stderr, "actionctl: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd assembles a fresh command tree. Commands hold their flag
// state locally, so trees built here do not interfere with each other.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "actionctl",
		Short: "Workflow command encoder for runner job steps",
		Long: `actionctl renders the line-oriented workflow commands a job step uses
to talk to its host runner, and drives the file side channels the runner
advertises for environment, PATH, output, and state updates.

Stdout carries only protocol lines and queried values; diagnostics go to
stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The config subtree manages config files itself and must not
			// fail on the file it is about to create or inspect.
			if underConfigCmd(cmd) {
				logging.ConfigureRuntime()
				return nil
			}
			cfg, path, err := config.Resolve(cfgFile)
			if err != nil {
				return err
			}
			logging.ConfigureWith(cfg.ToLogging())
			if path != "" {
				log.Debug().Str("path", path).Msg("config file applied")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultPath()+")")

	root.AddCommand(
		newIssueCommandCmd(),
		newParseCmd(),
		newSetEnvCmd(),
		newExportCmd(),
		newSetOutputCmd(),
		newAddPathCmd(),
		newSaveStateCmd(),
		newGetStateCmd(),
		newGetInputCmd(),
		newIsDebugCmd(),
		newDebugCmd(),
		newNoticeCmd(),
		newWarningCmd(),
		newErrorCmd(),
		newAddMaskCmd(),
		newStopCommandsCmd(),
		newStartCommandsCmd(),
		newEchoCmd(),
		newStartGroupCmd(),
		newEndGroupCmd(),
		newGroupCmd(tools.ExecRunner{}),
		newConfigCmd(&cfgFile),
		newVersionCmd(),
	)
	return root
}

func underConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// service builds the workflow service against the command's output stream
// so tests can capture emitted protocol lines.
func service(cmd *cobra.Command) *workflow.Service {
	cfg := workflow.DefaultConfig()
	cfg.Out = cmd.OutOrStdout()
	return workflow.NewServiceWithConfig(cfg)
}
