// Package logutil prints colored status lines for the command-line tools.
package logutil

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mgutz/ansi"
)

var (
	funcErr   = ansi.ColorFunc("red+h")
	funcWarn  = ansi.ColorFunc("yellow")
	funcGood  = ansi.ColorFunc("green")
	funcDebug = ansi.ColorFunc("black+h")
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects every line to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// DisableColors turns escape codes off, e.g. when stderr is not a terminal.
func DisableColors(disable bool) {
	ansi.DisableColors(disable)
}

func write(color func(string) string, s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprint(out, color(s))
}

// LogError prints err with its stack trace when it has one.
func LogError(err error) {
	write(funcErr, fmt.Sprintf("[  ERR] %+v\n", err))
}

// LogWarnf prints a formatted warning.
func LogWarnf(f string, v ...any) {
	write(funcWarn, "[ WARN] "+fmt.Sprintf(f, v...)+"\n")
}

// LogDebug prints its operands separated by spaces, dimmed.
func LogDebug(msg ...any) {
	write(funcDebug, fmt.Sprintln(append([]any{"[DEBUG]"}, msg...)...))
}

// LogGoodf prints a formatted status line.
func LogGoodf(f string, v ...any) {
	write(funcGood, "[ INFO] "+fmt.Sprintf(f, v...)+"\n")
}
