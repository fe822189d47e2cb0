package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [doc-id]",
	Short: "Render a document's configured show fields",
	Long: `Resolves and formats every configured show field for a document.

Each field goes through the resolution strategy order; absent fields
are listed with an empty value so the output always mirrors the
configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

// renderField limits output to a single configured field.
var renderField string

// renderJSON switches output to JSON.
var renderJSON bool

func init() {
	renderCmd.Flags().StringVarP(&renderField, "field", "f", "", "Render only the named show field")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "Output rendered fields as JSON")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if presenterService == nil {
		return errors.New("presenter service not configured")
	}

	docID := args[0]
	ctx := context.Background()

	if renderField != "" {
		rf, err := presenterService.RenderField(ctx, docID, renderField)
		if err != nil {
			return fmt.Errorf("failed to render field: %w", err)
		}
		return printRendered(cmd, nil, []RenderedFieldOutput{toOutput(rf)})
	}

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
