package tools

import (
	"errors"
	"io"
	"os/exec"
)

// RunSpec describes one child process invocation. Streams are wired
// directly onto the child so its output interleaves with the caller's.
type RunSpec struct {
	Name   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandRunner abstracts child process execution so wrappers can be
// tested without spawning real processes.
type CommandRunner interface {
	Run(spec RunSpec) (int, error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct{}

// tools command-runner implementation backed by os/exec. A child that ran
// and exited non-zero is not an error here; the exit code carries the
// outcome. Failing to start the child at all reports 127.
func (r ExecRunner) Run(spec RunSpec) (int, error) {
	cmd := exec.Command(spec.Name, spec.Args...)
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return 127, err
	}
	return 1, err
}
