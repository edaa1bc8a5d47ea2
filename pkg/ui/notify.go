// Package ui provides the console implementation of the notifier
// collaborator: short user-facing diagnostics rendered with pterm,
// with styling disabled when stdout is not a terminal.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/monolens/pkg/types"
)

// ConsoleNotifier renders notifications to the terminal
type ConsoleNotifier struct{}

// NewConsoleNotifier creates the console notifier, disabling pterm
// styling when output is piped.
func NewConsoleNotifier() *ConsoleNotifier {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableStyling()
	}
	return &ConsoleNotifier{}
}

// Info implements types.Notifier
func (n *ConsoleNotifier) Info(msg string) {
	pterm.Info.Println(msg)
}

// Warn implements types.Notifier
func (n *ConsoleNotifier) Warn(msg string) {
	pterm.Warning.Println(msg)
}

// Error implements types.Notifier
func (n *ConsoleNotifier) Error(msg string) {
	pterm.Error.Println(msg)
}

// compile-time interface check
var _ types.Notifier = (*ConsoleNotifier)(nil)
