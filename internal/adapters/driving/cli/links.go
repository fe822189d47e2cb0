package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vetrina/internal/core/domain"
)

var linksCmd = &cobra.Command{
	Use:   "links [doc-id]",
	Short: "List a document's alternate-representation links",
	Long: `Generates one link per export format the document offers.

Formats can be excluded by name, and --unique keeps only the first
format seen for each content type.`,
	Args: cobra.ExactArgs(1),
	RunE: runLinks,
}

var (
	linksUnique  bool
	linksExclude []string
)

func init() {
	linksCmd.Flags().BoolVar(&linksUnique, "unique", false, "Keep one format per content type")
	linksCmd.Flags().StringSliceVar(&linksExclude, "exclude", nil, "Format names to leave out")
	rootCmd.AddCommand(linksCmd)
}

func runLinks(cmd *cobra.Command, args []string) error {
	if presenterService == nil {
		return errors.New("presenter service not configured")
	}

	opts := domain.AlternateLinkOptions{
		Unique:  linksUnique,
		Exclude: linksExclude,
	}

	links, err := presenterService.AlternateLinks(context.Background(), args[0], opts)
	if err != nil {
		return fmt.Errorf("failed to generate links: %w", err)
	}

	if len(links) == 0 {
		cmd.Println("No alternate links.")
		return nil
	}

	for _, l := range links {
		cmd.Printf("%s  %s  %s\n", l.Title, l.ContentType, l.Href)
	}
	return nil
}
