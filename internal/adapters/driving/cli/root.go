// Package cli provides the cobra command-line interface for Vetrina.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vetrina/internal/core/ports/driving"
	"github.com/custodia-labs/vetrina/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired before command execution. main installs them through
// Wire; tests inject fakes directly.
var (
	presenterService driving.Presenter
	documentService  driving.DocumentService
	fieldConfig      ConfigSource
)

// ConfigSource is the field-configuration surface the CLI needs beyond
// the presenter: where the config lives and how to watch it for edits.
type ConfigSource interface {
	Path() string
	Reload() error
	Watch(ctx context.Context, onChange func()) error
}

// Persistent flags.
var (
	verboseFlag bool
	configPath  string
	dataDir     string
	memoryOnly  bool
)

// wire builds the default service graph before a command runs. main
// installs it; tests set the service vars directly and leave it nil.
var wire func() error

// SetWire installs the service wiring invoked once before each command.
func SetWire(fn func() error) {
	wire = fn
}

var rootCmd = &cobra.Command{
	Use:   "vetrina",
	Short: "Render indexed documents through declarative field configuration",
	Long: `Vetrina resolves and formats display values for indexed documents.

Each configured field is resolved through a fixed strategy order
(explicit values, helpers, facet links, highlights, accessors, raw
lookup), then formatted as a markup-safe natural-language list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if wire == nil || presenterService != nil {
			return nil
		}
		return wire()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the field configuration file (default ~/.vetrina/fields.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for the document database (default ~/.vetrina/data)")
	rootCmd.PersistentFlags().BoolVar(&memoryOnly, "memory", false, "Keep documents in memory instead of on disk")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
