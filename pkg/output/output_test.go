package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kierobot/launcher/pkg/launch"
	"github.com/kierobot/launcher/pkg/venv"
)

func noColors(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldYellow, oldReset := green, red, yellow, reset
	green, red, yellow, reset = "", "", "", ""
	t.Cleanup(func() { green, red, yellow, reset = oldGreen, oldRed, oldYellow, oldReset })
}

func TestPrinterStarting(t *testing.T) {
	noColors(t)
	var buf bytes.Buffer
	p := &Printer{W: &buf}

	p.Starting("/opt/bot/bot.py", venv.Resolution{Path: "/opt/bot/.venv/bin/python", Source: venv.SourceHiddenVenv})

	expected := "[RUN] bot.py\n      interpreter: /opt/bot/.venv/bin/python (.venv)\n"
	if buf.String() != expected {
		t.Errorf("Starting output = %q, want %q", buf.String(), expected)
	}
}

func TestPrinterFinished(t *testing.T) {
	noColors(t)

	tests := []struct {
		name    string
		outcome launch.Outcome
		want    string
	}{
		{
			name:    "success",
			outcome: launch.Outcome{Entry: "/opt/bot/bot.py", ExitCode: 0},
			want:    "[OK] bot.py\n",
		},
		{
			name:    "non-zero exit",
			outcome: launch.Outcome{Entry: "/opt/bot/bot.py", ExitCode: 2},
			want:    "[FAIL] bot.py\n       exit status 2\n",
		},
		{
			name:    "killed by signal",
			outcome: launch.Outcome{Entry: "/opt/bot/bot.py", ExitCode: -1, Signal: "killed"},
			want:    "[FAIL] bot.py\n       killed by signal: killed\n",
		},
		{
			name:    "spawn error",
			outcome: launch.Outcome{Entry: "/opt/bot/bot.py", ExitCode: 1, Err: errors.New("failed to start python3: not found")},
			want:    "[FAIL] bot.py\n       failed to start python3: not found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := &Printer{W: &buf}
			p.Finished(tt.outcome)
			if buf.String() != tt.want {
				t.Errorf("Finished output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinterImplementsReporter(t *testing.T) {
	var _ launch.Reporter = &Printer{}
}
