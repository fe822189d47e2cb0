package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/vetrina/internal/adapters/driving/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [doc-id]",
	Short: "Browse a rendered document in the terminal UI",
	Long: `Opens an interactive detail view of the rendered document.

Controls:
  ↑/k, ↓/j - Scroll
  r        - Re-render
  q, Esc   - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	if presenterService == nil {
		return errors.New("presenter service not configured")
	}

	// Panic recovery so a rendering bug leaves a stack trace rather
	// than a corrupted terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	model := tui.NewDetail(presenterService, args[0])

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
