package logger

import "github.com/jwalton/go-supportscolor"

func stderrSupportsColor() bool {
	return supportscolor.Stderr().SupportsColor
}
