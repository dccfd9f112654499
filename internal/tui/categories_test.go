package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/ersonp/dex/internal/domain/entities"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIcon   string
		wantColor  lipgloss.Color
		wantDarker lipgloss.Color
	}{
		{name: "feu", input: "feu", wantIcon: "♨", wantColor: "#FB6C6B", wantDarker: "#B95150"},
		{name: "case insensitive", input: "PLANTE", wantIcon: "♣", wantColor: "#48D0B0", wantDarker: "#379983"},
		{name: "vol has no light shade", input: "vol", wantIcon: "➶", wantColor: colorUnknownCategory, wantDarker: "#0228E8"},
		{name: "unknown", input: "dragon", wantIcon: "?", wantColor: colorUnknownCategory, wantDarker: colorUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CategoryFor(tt.input)
			assert.Equal(t, tt.input, c.Name)
			assert.Equal(t, tt.wantIcon, c.Icon)
			assert.Equal(t, tt.wantColor, c.Color)
			assert.Equal(t, tt.wantDarker, c.Darker)
		})
	}
}

func TestRenderDetail(t *testing.T) {
	records := testRecords()
	catalog := entities.NewCatalog(records)

	out := RenderDetail(records[0], catalog, 0)
	assert.Contains(t, out, "Sala")
	assert.Contains(t, out, "#001")
	assert.Contains(t, out, "plante")
	assert.Contains(t, out, "Une graine sur le dos.")
	assert.Contains(t, out, "Herbi #002")
	assert.Contains(t, out, "http://x/1.png")

	out = RenderDetail(records[1], nil, 0)
	assert.Contains(t, out, "n° 1")
	assert.Contains(t, out, "n° 3")
	assert.NotContains(t, out, "Image")
}
