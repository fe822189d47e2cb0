package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [doc-id]",
	Short: "Re-render a document whenever the field configuration changes",
	Long: `Renders the document, then watches the field configuration file and
renders again after every edit. Useful while authoring show-field
configuration. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if presenterService == nil {
		return errors.New("presenter service not configured")
	}
	if fieldConfig == nil {
		return errors.New("field configuration not configured")
	}

	docID := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := previewOnce(ctx, cmd, docID); err != nil {
		return err
	}
	cmd.Printf("\nWatching %s (Ctrl+C to stop)\n", fieldConfig.Path())

	err := fieldConfig.Watch(ctx, func() {
		cmd.Println()
		if err := previewOnce(ctx, cmd, docID); err != nil {
			cmd.PrintErrf("render failed: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func previewOnce(ctx context.Context, cmd *cobra.Command, docID string) error {
	heading, err := presenterService.Heading(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to resolve heading: %w", err)
	}
	fields, err := presenterService.RenderShowFields(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	out := make([]RenderedFieldOutput, len(fields))
	for i, rf := range fields {
		out[i] = toOutput(rf)
	}
	return printRendered(cmd, &heading, out)
}
