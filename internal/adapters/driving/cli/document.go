package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vetrina/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage stored documents",
	Long:  `Add, list, view, or delete document snapshots in the store.`,
}

var documentAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Store a document from a JSON file",
	Long: `Reads a document snapshot as JSON and stores it.

With no file argument the document is read from standard input. A
document without an ID is assigned one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Print a stored document as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

func init() {
	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

// documentJSON is the import/export shape of a document snapshot.
type documentJSON struct {
	ID         string              `json:"id,omitempty"`
	Fields     map[string][]string `json:"fields"`
	Highlights map[string][]string `json:"highlights,omitempty"`
	Formats    []formatJSON        `json:"formats,omitempty"`
}

type formatJSON struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
}

func (dj documentJSON) toDomain() *domain.Document {
	doc := &domain.Document{
		ID:         dj.ID,
		Fields:     dj.Fields,
		Highlights: dj.Highlights,
	}
	for _, f := range dj.Formats {
		doc.Formats = append(doc.Formats, domain.ExportFormat{
			Name:        f.Name,
			ContentType: f.ContentType,
		})
	}
	return doc
}

func fromDomain(doc *domain.Document) documentJSON {
	dj := documentJSON{
		ID:         doc.ID,
		Fields:     doc.Fields,
		Highlights: doc.Highlights,
	}
	for _, f := range doc.Formats {
		dj.Formats = append(dj.Formats, formatJSON{
			Name:        f.Name,
			ContentType: f.ContentType,
		})
	}
	return dj
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	var reader io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open document file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var dj documentJSON
	if err := json.NewDecoder(reader).Decode(&dj); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	if len(dj.Fields) == 0 {
		return errors.New("document has no fields")
	}

	id, err := documentService.Add(context.Background(), dj.toDomain())
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	cmd.Printf("Stored document %s\n", id)
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents stored.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s  (%d fields, %d formats)\n",
			docs[i].ID, len(docs[i].Fields), len(docs[i].Formats))
	}
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	data, err := json.MarshalIndent(fromDomain(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}
