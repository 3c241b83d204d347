// Package launch runs the bot: resolve the interpreter, spawn, wait, pause.
package launch

import (
	"fmt"
	"path/filepath"

	"github.com/kierobot/launcher/pkg/logger"
	"github.com/kierobot/launcher/pkg/pause"
	"github.com/kierobot/launcher/pkg/runner"
	"github.com/kierobot/launcher/pkg/venv"
)

// Outcome is what a launch produced.
type Outcome struct {
	Entry       string          // absolute path of the application file
	Interpreter venv.Resolution // zero if resolution failed
	ExitCode    int             // child exit status, 1 if it never ran, -1 if killed
	Signal      string          // signal that killed the child, if any
	Err         error           // set when the child could not be run
}

// OK returns true if the child ran and exited with status 0.
func (o Outcome) OK() bool {
	return o.Err == nil && o.ExitCode == 0 && o.Signal == ""
}

// Reporter receives progress for display.
type Reporter interface {
	Starting(entry string, interp venv.Resolution)
	Finished(o Outcome)
}

// Launcher runs Entry from Dir. Resolver, Runner and Pauser are required.
type Launcher struct {
	Dir      string // absolute launcher directory; also the child's working directory
	Entry    string // application file, relative to Dir
	Resolver venv.Resolver
	Runner   runner.Runner
	Pauser   pause.Pauser
	Reporter Reporter       // optional
	Log      *logger.Logger // optional
}

// Run performs the launch and then pauses exactly once, whatever the child's
// outcome. The pause happens only after the child has exited.
func (l *Launcher) Run() Outcome {
	log := l.Log
	if log == nil {
		log = logger.Nop()
	}

	out := l.launch(log)
	if l.Reporter != nil {
		l.Reporter.Finished(out)
	}

	if err := l.Pauser.Pause(); err != nil {
		log.Warn().Err(err).Msg("pause interrupted")
	}
	return out
}

func (l *Launcher) launch(log *logger.Logger) Outcome {
	out := Outcome{Entry: l.entryPath(), ExitCode: 1}

	interp, err := l.Resolver.Resolve()
	if err != nil {
		out.Err = fmt.Errorf("failed to resolve interpreter: %w", err)
		return out
	}
	out.Interpreter = interp
	log.Debug().Str("source", interp.Source.String()).Str("path", interp.Path).Msg("interpreter selected")

	if l.Reporter != nil {
		l.Reporter.Starting(out.Entry, interp)
	}

	st, err := l.Runner.Run(runner.Command{
		Path: interp.Path,
		Args: []string{out.Entry},
		Dir:  l.Dir,
	})
	if err != nil {
		out.Err = err
		return out
	}
	out.ExitCode, out.Signal = st.Code, st.Signal
	log.Debug().Int("exit_code", st.Code).Str("signal", st.Signal).Msg("application exited")
	return out
}

func (l *Launcher) entryPath() string {
	if filepath.IsAbs(l.Entry) {
		return l.Entry
	}
	return filepath.Join(l.Dir, l.Entry)
}
