package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Entry is the application file started next to the launcher, set at build
// time via ldflags.
var Entry = "bot.py"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "launcher",
	Short:         "Start the Kiero bot with its virtual environment",
	Long:          "Launcher runs bot.py with the interpreter from .venv or venv next to it, falling back to the system Python, and keeps the window open afterwards.",
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runLaunch,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// exitError carries the launcher's exit status once output has been shown.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
