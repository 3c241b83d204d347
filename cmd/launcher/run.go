package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kierobot/launcher/pkg/config"
	"github.com/kierobot/launcher/pkg/launch"
	"github.com/kierobot/launcher/pkg/logger"
	"github.com/kierobot/launcher/pkg/output"
	"github.com/kierobot/launcher/pkg/pause"
	"github.com/kierobot/launcher/pkg/runner"
	"github.com/kierobot/launcher/pkg/venv"
)

var (
	baseDirFlag string
	entryFlag   string
	pythonFlag  string
	pauseFlag   string
	configFlag  string
	verboseFlag bool
)

// newRunner and executable are replaced in tests.
var (
	newRunner  = func() runner.Runner { return &runner.RealRunner{} }
	executable = os.Executable
)

func init() {
	rootCmd.Flags().StringVar(&baseDirFlag, "dir", "", "launcher directory (default: directory of the executable)")
	rootCmd.Flags().StringVar(&entryFlag, "entry", "", "application file relative to the launcher directory (default: "+Entry+")")
	rootCmd.Flags().StringVar(&pythonFlag, "python", "", "interpreter name used when no virtual environment exists (default: "+venv.SystemInterpreter+")")
	rootCmd.Flags().StringVar(&pauseFlag, "pause", "", "wait for Enter after exit: always, never or auto (default: always)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "path to config file (default: "+config.FileName+" in the launcher directory)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log interpreter selection")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	// Until the config is read, only --pause can silence the prompt.
	early, err := pause.ParseMode(pauseFlag)
	if err != nil {
		return setupFailed(cmd, pause.ModeAlways, err)
	}

	base, err := baseDir(baseDirFlag)
	if err != nil {
		return setupFailed(cmd, early, err)
	}

	cfg, used, err := config.Load(base, configFlag)
	if err != nil {
		return setupFailed(cmd, early, err)
	}
	applyFlags(cmd, &cfg)

	mode, err := pause.ParseMode(cfg.Pause)
	if err != nil {
		return setupFailed(cmd, early, err)
	}

	root := logger.New(cmd.ErrOrStderr(), cfg.Verbose)
	if used != "" {
		root.Debug().Str("file", used).Msg("config loaded")
	}
	log := root.Extend(root.With().Str("entry", cfg.Entry))
	log.Debug().Str("dir", base).Str("pause", string(mode)).Msg("launching")

	l := &launch.Launcher{
		Dir:      base,
		Entry:    cfg.Entry,
		Resolver: &venv.Finder{Base: base, System: cfg.Python, FS: &venv.RealFileSystem{}},
		Runner:   newRunner(),
		Pauser:   &pause.Prompt{Mode: mode, In: cmd.InOrStdin(), Out: cmd.OutOrStdout()},
		Reporter: &output.Printer{W: cmd.OutOrStdout()},
		Log:      log,
	}

	out := l.Run()
	if out.OK() {
		return nil
	}
	return &exitError{code: exitCode(out)}
}

// applyFlags layers explicitly set flags and build-time defaults over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("entry") {
		cfg.Entry = entryFlag
	}
	if cfg.Entry == "" {
		cfg.Entry = Entry
	}
	if flags.Changed("python") {
		cfg.Python = pythonFlag
	}
	if flags.Changed("pause") {
		cfg.Pause = pauseFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verboseFlag
	}
}

// baseDir returns the absolute launcher directory. Relative paths are never
// resolved against the caller's working directory unless override is given.
func baseDir(override string) (string, error) {
	if override != "" {
		dir, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("failed to resolve --dir: %w", err)
		}
		return dir, nil
	}

	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// setupFailed shows err and keeps the window open so it can be read.
func setupFailed(cmd *cobra.Command, mode pause.Mode, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	p := &pause.Prompt{Mode: mode, In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	_ = p.Pause()
	return &exitError{code: 1}
}

func exitCode(out launch.Outcome) int {
	if out.Err != nil || out.ExitCode <= 0 {
		return 1
	}
	return out.ExitCode
}
