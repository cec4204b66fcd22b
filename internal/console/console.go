// Package console prints the messages meant for the person at the terminal.  Progress goes to standard output
// with an "INFO:" prefix, problems go to standard error prefixed "WARN:" or "ERROR:".
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Message prefixes.  Their exact text is not a compatibility contract.
const (
	infoPrefix  = "INFO: "
	warnPrefix  = "WARN: "
	errorPrefix = "ERROR: "
)

// Printer writes prefixed messages.  Colors are only used when the destination is a terminal.
type Printer struct {
	out io.Writer
	err io.Writer

	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
}

// New creates a printer writing progress to out and diagnostics to errOut
func New(out, errOut io.Writer) *Printer {
	p := &Printer{
		out:        out,
		err:        errOut,
		infoColor:  color.New(color.FgCyan),
		warnColor:  color.New(color.FgYellow),
		errorColor: color.New(color.FgRed, color.Bold),
	}

	if !isTerminal(out) {
		p.infoColor.DisableColor()
	}
	if !isTerminal(errOut) {
		p.warnColor.DisableColor()
		p.errorColor.DisableColor()
	}

	return p
}

// Default returns a printer on the process's standard output and standard error
func Default() *Printer {
	return New(os.Stdout, os.Stderr)
}

// isTerminal reports whether w itself is a terminal and colors are allowed at all.  Each stream is checked on its
// own, since stdout and stderr are often redirected separately.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Infof prints a progress message to standard output
func (p *Printer) Infof(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s%s\n", p.infoColor.Sprint(infoPrefix), fmt.Sprintf(format, args...))
}

// Warnf prints a warning to standard error
func (p *Printer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.err, "%s%s\n", p.warnColor.Sprint(warnPrefix), fmt.Sprintf(format, args...))
}

// Errorf prints an error to standard error
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.err, "%s%s\n", p.errorColor.Sprint(errorPrefix), fmt.Sprintf(format, args...))
}

// Hint prints an unprefixed follow-up line, such as the pointer to -h, to standard error
func (p *Printer) Hint(text string) {
	_, _ = fmt.Fprintln(p.err, text)
}

// Print writes text to standard output exactly as given
func (p *Printer) Print(text string) {
	_, _ = io.WriteString(p.out, text)
}

// Out returns the progress writer
func (p *Printer) Out() io.Writer {
	return p.out
}
