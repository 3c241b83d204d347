package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jwalton/go-supportscolor"

	"github.com/kierobot/launcher/pkg/launch"
	"github.com/kierobot/launcher/pkg/venv"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, reset = "", "", "", ""
	}
}

// Printer reports launch progress with colored status tags.
type Printer struct {
	W io.Writer // defaults to os.Stdout
}

func (p *Printer) out() io.Writer {
	if p.W == nil {
		return os.Stdout
	}
	return p.W
}

// Starting prints which interpreter runs the application.
func (p *Printer) Starting(entry string, interp venv.Resolution) {
	w := p.out()
	_, _ = fmt.Fprintf(w, "%s[RUN]%s %s\n", yellow, reset, filepath.Base(entry))
	_, _ = fmt.Fprintf(w, "      interpreter: %s (%s)\n", interp.Path, interp.Source)
}

// Finished prints the launch outcome.
func (p *Printer) Finished(o launch.Outcome) {
	w := p.out()
	name := filepath.Base(o.Entry)
	if o.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, name)
		return
	}
	_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, name)
	if o.Err != nil {
		_, _ = fmt.Fprintf(w, "       %v\n", o.Err)
		return
	}
	if o.Signal != "" {
		_, _ = fmt.Fprintf(w, "       killed by signal: %s\n", o.Signal)
		return
	}
	_, _ = fmt.Fprintf(w, "       exit status %d\n", o.ExitCode)
}
