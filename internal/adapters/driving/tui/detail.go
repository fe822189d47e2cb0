// Package tui provides the interactive document detail view.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vetrina/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driving"
)

// detailLoaded carries a freshly rendered document into the model.
type detailLoaded struct {
	heading string
	fields  []driving.RenderedField
	links   []domain.AlternateLink
	err     error
}

// Detail is the document detail model. It renders the document through
// the presenter and shows the result in a scrollable viewport.
type Detail struct {
	styles    *styles.Styles
	presenter driving.Presenter
	docID     string

	viewport viewport.Model
	heading  string
	fields   []driving.RenderedField
	links    []domain.AlternateLink
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
}

// NewDetail creates a detail model for the given document.
func NewDetail(presenter driving.Presenter, docID string) *Detail {
	return &Detail{
		styles:    styles.DefaultStyles(),
		presenter: presenter,
		docID:     docID,
		loading:   true,
	}
}

// Init starts the initial render.
func (d *Detail) Init() tea.Cmd {
	return d.load()
}

// load returns a command that renders the document.
func (d *Detail) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		heading, err := d.presenter.Heading(ctx, d.docID)
		if err != nil {
			return detailLoaded{err: err}
		}
		fields, err := d.presenter.RenderShowFields(ctx, d.docID)
		if err != nil {
			return detailLoaded{err: err}
		}
		links, err := d.presenter.AlternateLinks(ctx, d.docID, domain.AlternateLinkOptions{})
		if err != nil {
			return detailLoaded{err: err}
		}

		return detailLoaded{heading: heading, fields: fields, links: links}
	}
}

// Update handles messages.
func (d *Detail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		// Heading, separator, and help line sit outside the viewport.
		vpHeight := msg.Height - 4
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !d.ready {
			d.viewport = viewport.New(msg.Width, vpHeight)
			d.ready = true
		} else {
			d.viewport.Width = msg.Width
			d.viewport.Height = vpHeight
		}
		d.viewport.SetContent(d.content())
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return d, tea.Quit
		case "r":
			d.loading = true
			return d, d.load()
		}

	case detailLoaded:
		d.loading = false
		if msg.err != nil {
			d.err = msg.err
			return d, nil
		}
		d.err = nil
		d.heading = msg.heading
		d.fields = msg.fields
		d.links = msg.links
		if d.ready {
			d.viewport.SetContent(d.content())
			d.viewport.GotoTop()
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// content builds the viewport body from the rendered fields and links.
func (d *Detail) content() string {
	var b strings.Builder

	width := 0
	for i := range d.fields {
		if l := len(d.fields[i].Label); l > width {
			width = l
		}
	}

	for i := range d.fields {
		label := fmt.Sprintf("%-*s", width+1, d.fields[i].Label+":")
		b.WriteString(d.styles.Label.Render(label))
		b.WriteString(" ")
		if d.fields[i].Present {
			b.WriteString(d.styles.Normal.Render(string(d.fields[i].Value)))
		} else {
			b.WriteString(d.styles.Muted.Render("—"))
		}
		b.WriteString("\n")
	}

	if len(d.links) > 0 {
		b.WriteString("\n")
		b.WriteString(d.styles.Label.Render("Alternate formats:"))
		b.WriteString("\n")
		for _, l := range d.links {
			b.WriteString(d.styles.Normal.Render(fmt.Sprintf("  %s  %s", l.Title, l.Href)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// View renders the detail screen.
func (d *Detail) View() string {
	if !d.ready {
		return "Loading..."
	}

	var b strings.Builder

	heading := d.heading
	if heading == "" {
		heading = d.docID
	}
	b.WriteString(d.styles.Heading.Render(heading))
	b.WriteString("\n")
	b.WriteString(d.styles.Muted.Render(strings.Repeat("─", minInt(d.width, 60))))
	b.WriteString("\n")

	switch {
	case d.err != nil:
		b.WriteString(d.styles.Error.Render(fmt.Sprintf("Error: %s", d.err.Error())))
		b.WriteString("\n")
	case d.loading:
		b.WriteString(d.styles.Muted.Render("Rendering..."))
		b.WriteString("\n")
	default:
		b.WriteString(d.viewport.View())
		b.WriteString("\n")
	}

	help := d.styles.Help.Render("↑/↓ scroll • r re-render • q quit")
	b.WriteString(lipgloss.NewStyle().Width(d.width).Render(help))

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
