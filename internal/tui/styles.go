package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/adivina/internal/game"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrWhite  = lipgloss.Color("#FFFFFF")
	clrGreen  = lipgloss.Color("#7CFC00")
	clrOrange = lipgloss.Color("#FFA500")
	clrGray   = lipgloss.Color("#787C7E")
	clrInk    = lipgloss.Color("#000000")
	clrSubtle = lipgloss.Color("#8b949e")
	clrTitle  = lipgloss.Color("#58a6ff")
)

// Styles groups every style the view uses.
type Styles struct {
	Title   lipgloss.Style
	Cell    lipgloss.Style
	Cursor  lipgloss.Style
	Locked  lipgloss.Style
	Message lipgloss.Style
	Subtle  lipgloss.Style

	marks map[game.Mark]lipgloss.Color
}

// DefaultStyles returns the palette of the original board: absent letters
// are white like empty cells unless highlightMisses is set.
func DefaultStyles(highlightMisses bool) Styles {
	absent := clrWhite
	if highlightMisses {
		absent = clrGray
	}
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(clrTitle).Bold(true).MarginBottom(1),
		Cell:    lipgloss.NewStyle().Foreground(clrInk).Padding(0, 1),
		Cursor:  lipgloss.NewStyle().Underline(true).Bold(true),
		Locked:  lipgloss.NewStyle().Foreground(clrSubtle),
		Message: lipgloss.NewStyle().Bold(true).MarginTop(1),
		Subtle:  lipgloss.NewStyle().Foreground(clrSubtle),
		marks: map[game.Mark]lipgloss.Color{
			game.MarkNeutral: clrWhite,
			game.MarkExact:   clrGreen,
			game.MarkPresent: clrOrange,
			game.MarkAbsent:  absent,
		},
	}
}

// Background returns the cell colour for m.
func (s Styles) Background(m game.Mark) lipgloss.Color {
	if c, ok := s.marks[m]; ok {
		return c
	}
	return clrWhite
}
