package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vetrina/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vetrina/internal/core/ports/driving"
)

// RenderedFieldOutput is the JSON shape of one rendered field.
type RenderedFieldOutput struct {
	Field   string `json:"field"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

func toOutput(rf driving.RenderedField) RenderedFieldOutput {
	return RenderedFieldOutput{
		Field:   rf.Field,
		Label:   rf.Label,
		Value:   string(rf.Value),
		Present: rf.Present,
	}
}

// printRendered writes rendered fields as labelled lines, or as JSON
// when --json was given. heading, when non-nil, precedes the fields.
func printRendered(cmd *cobra.Command, heading *string, fields []RenderedFieldOutput) error {
	if renderJSON {
		payload := struct {
			Heading string                `json:"heading,omitempty"`
			Fields  []RenderedFieldOutput `json:"fields"`
		}{Fields: fields}
		if heading != nil {
			payload.Heading = *heading
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	s := styles.DefaultStyles()
	if heading != nil {
		cmd.Println(s.Heading.Render(*heading))
		cmd.Println()
	}

	width := 0
	for i := range fields {
		if l := len(fields[i].Label); l > width {
			width = l
		}
	}
	for i := range fields {
		label := fmt.Sprintf("%-*s", width+1, fields[i].Label+":")
		cmd.Printf("%s %s\n", s.Label.Render(label), fields[i].Value)
	}
	return nil
}
