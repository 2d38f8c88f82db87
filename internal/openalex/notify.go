package openalex

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Notifier receives human-readable status messages during retry waits.
// Implementations must be safe to call with an empty message.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }

// SilentNotifier discards all messages.
type SilentNotifier struct{}

// Notify does nothing.
func (SilentNotifier) Notify(string) {}

// TerminalNotifier writes messages to stderr, but only when stderr is an
// interactive terminal. Piped invocations stay quiet.
type TerminalNotifier struct{}

// Notify writes the message to stderr when it is a TTY.
func (TerminalNotifier) Notify(message string) {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintln(os.Stderr, message)
	}
}
