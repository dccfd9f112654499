package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ersonp/dex/internal/domain/entities"
)

// RenderDetail renders the full view of one record. Evolution ids are resolved
// against catalog; ids missing from the batch are shown as "n° <id>".
// A width of zero disables wrapping.
func RenderDetail(r entities.Record, catalog *entities.Catalog, width int) string {
	var b strings.Builder

	b.WriteString(styleDetailTitle.Render(r.Name))
	b.WriteString(" ")
	b.WriteString(styleDetailDim.Render(r.DisplayID()))
	b.WriteString("\n\n")
	b.WriteString(renderBadges(r.Categories))
	b.WriteString("\n")

	b.WriteString(styleDetailSection.Render("Description"))
	b.WriteString("\n")
	desc := r.Description
	if width > 0 {
		desc = lipgloss.NewStyle().Width(width).Render(desc)
	}
	b.WriteString(desc)
	b.WriteString("\n")

	b.WriteString(styleDetailSection.Render("Evolution chain"))
	b.WriteString("\n")
	b.WriteString(renderEvolutionChain(r, catalog))
	b.WriteString("\n")

	if r.ImageURL != "" {
		b.WriteString(styleDetailSection.Render("Image"))
		b.WriteString("\n")
		b.WriteString(styleDetailDim.Render(r.ImageURL))
		b.WriteString("\n")
	}

	return b.String()
}

func renderEvolutionChain(r entities.Record, catalog *entities.Catalog) string {
	steps := make([]string, 0, len(r.Evolutions.Before)+len(r.Evolutions.After)+1)
	for _, id := range r.Evolutions.Before {
		steps = append(steps, renderEvolutionStep(id, catalog))
	}
	steps = append(steps, styleEvolutionCurrent.Render(r.Name))
	for _, id := range r.Evolutions.After {
		steps = append(steps, renderEvolutionStep(id, catalog))
	}
	return strings.Join(steps, " → ")
}

func renderEvolutionStep(id int, catalog *entities.Catalog) string {
	if catalog != nil {
		if rec, ok := catalog.ByID(id); ok {
			return rec.Name + " " + styleDetailDim.Render(rec.DisplayID())
		}
	}
	return styleDetailDim.Render(fmt.Sprintf("n° %d", id))
}
