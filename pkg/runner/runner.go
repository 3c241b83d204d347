// Package runner spawns the bot under the selected interpreter.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Status is how a child process ended.
type Status struct {
	Code   int    // exit code, -1 if the child was killed by a signal
	Signal string // signal name when killed, e.g. "killed"
}

// Success reports whether the child exited with status 0.
func (s Status) Success() bool {
	return s.Code == 0 && s.Signal == ""
}

func (s Status) String() string {
	if s.Signal != "" {
		return "killed by signal: " + s.Signal
	}
	return fmt.Sprintf("exit status %d", s.Code)
}

// Command describes a child process. Nil streams are inherited from the
// launcher.
type Command struct {
	Path   string   // interpreter path or bare name looked up on PATH
	Args   []string // arguments after the interpreter
	Dir    string   // child working directory
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner abstracts process execution for testability.
type Runner interface {
	// Run starts the command and blocks until it exits. A child that runs and
	// exits non-zero or is killed is not an error: that is reported in Status.
	// err is set only when the child could not be run at all.
	Run(c Command) (Status, error)
}

// RealRunner implements Runner using os/exec.
type RealRunner struct{}

// Run executes the command with inherited standard streams and waits for it.
func (r *RealRunner) Run(c Command) (Status, error) {
	// #nosec G204 -- the interpreter and entry point come from the launcher's own directory.
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = orReader(c.Stdin, os.Stdin)
	cmd.Stdout = orWriter(c.Stdout, os.Stdout)
	cmd.Stderr = orWriter(c.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return Status{}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitStatus(exitErr.ProcessState), nil
	}
	return Status{Code: -1}, fmt.Errorf("failed to start %s: %w", c.Path, err)
}

func exitStatus(ps *os.ProcessState) Status {
	st := Status{Code: ps.ExitCode()}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		st.Signal = ws.Signal().String()
	}
	return st
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(c Command) (Status, error)
}

// Run calls the mock function.
func (m *MockRunner) Run(c Command) (Status, error) {
	return m.RunFunc(c)
}
