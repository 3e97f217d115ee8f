// Package notify prints the transient notices shown while weather is fetched.
// Notices go to stderr so stdout carries only the rendered output.
package notify

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// ErrorPrefix labels every failure notice.
const ErrorPrefix = "Weather error: "

// Notifier shows start, success and error notices. A quiet Notifier prints
// nothing.
type Notifier struct {
	out   io.Writer
	quiet bool
}

func New(quiet bool) *Notifier {
	return &Notifier{out: os.Stderr, quiet: quiet}
}

// NewWithWriter is New with a custom destination; the spinner is not used.
func NewWithWriter(w io.Writer, quiet bool) *Notifier {
	return &Notifier{out: w, quiet: quiet}
}

// Start shows the fetching notice and returns a function that clears it.
//
//	stop := n.Start("Fetching weather")
//	line, err := svc.Line(ctx, set)
//	stop()
func (n *Notifier) Start(message string) func() {
	if n.quiet {
		return func() {}
	}
	if n.out != os.Stderr {
		fmt.Fprintln(n.out, message+"...")
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}

func (n *Notifier) Success(message string) {
	if n.quiet {
		return
	}
	fmt.Fprintln(n.out, successStyle.Render(message))
}

// Error is always shown, even in quiet mode.
func (n *Notifier) Error(err error) {
	fmt.Fprintln(n.out, errorStyle.Render(ErrorPrefix+err.Error()))
}
