package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var headingCmd = &cobra.Command{
	Use:   "heading [doc-id]",
	Short: "Print the document heading",
	Long: `Resolves the document heading from the configured candidate fields.

The first candidate field present on the document wins; its values are
joined into a natural-language list. A document with none of the
candidates falls back to its ID.`,
	Args: cobra.ExactArgs(1),
	RunE: runHeading,
}

var titleCmd = &cobra.Command{
	Use:   "title [doc-id]",
	Short: "Print the document title",
	Long: `Resolves the document title from the configured candidate fields.

Unlike the heading, the title takes only the first value of the first
candidate that has a non-empty one.`,
	Args: cobra.ExactArgs(1),
	RunE: runTitle,
}

func init() {
	rootCmd.AddCommand(headingCmd)
	rootCmd.AddCommand(titleCmd)
}

func runHeading(cmd *cobra.Command, args []string) error {
	if presenterService == nil {
		return errors.New("presenter service not configured")
	}

	heading, err := presenterService.Heading(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve heading: %w", err)
	}

	cmd.Println(heading)
	return nil
}

func runTitle(cmd *cobra.Command, args []string) error {
	if presenterService == nil {
		return errors.New("presenter service not configured")
	}

	title, err := presenterService.Title(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve title: %w", err)
	}

	cmd.Println(title)
	return nil
}
