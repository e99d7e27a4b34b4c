package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/adivina/internal/game"
	"github.com/robalobadob/adivina/internal/store"
)

// Model is the board screen. It forwards keys to the engine as events
// and renders whatever round comes back.
type Model struct {
	engine  *game.Engine
	round   game.Round
	cursor  game.Cell
	started bool // start pressed at least once; the button now restarts

	store  store.Store
	styles Styles
	keys   KeyMap
	help   help.Model
	now    func() time.Time
}

// New returns a board with a not-yet-started round.
func New(e *game.Engine, st store.Store, styles Styles) Model {
	if st == nil {
		st = store.NewMemoryStore()
	}
	return Model{
		engine: e,
		round:  game.NewRound(),
		store:  st,
		styles: styles,
		keys:   DefaultKeyMap,
		help:   help.New(),
		now:    time.Now,
	}
}

// Round returns the current round state.
func (m Model) Round() game.Round { return m.round }

// Cursor returns the cell that receives typed letters.
func (m Model) Cursor() game.Cell { return m.cursor }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		if m.started {
			return m.dispatch(game.Restart{}), nil
		}
		m.started = true
		return m.dispatch(game.Start{}), nil
	case key.Matches(msg, m.keys.Submit):
		return m.dispatch(game.Submit{}), nil
	case key.Matches(msg, m.keys.Delete):
		c := m.cursor
		if m.round.Rows[c.Row].Letters[c.Col] != 0 {
			return m.dispatch(game.EditCell{Row: c.Row, Col: c.Col}), nil
		}
		return m.dispatch(game.DeleteBack{Row: c.Row, Col: c.Col}), nil
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = clamp(m.cursor.Col-1, game.WordLen)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = clamp(m.cursor.Col+1, game.WordLen)
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = clamp(m.cursor.Row-1, game.NumRows)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = clamp(m.cursor.Row+1, game.NumRows)
	case msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0:
		return m.dispatch(game.EditCell{Row: m.cursor.Row, Col: m.cursor.Col, Text: string(msg.Runes)}), nil
	}
	return m, nil
}

// dispatch runs ev through the engine. The caret follows the engine's
// suggested focus only when the event changed something, so ignored
// input (a locked row, a digit) leaves it where the player put it.
func (m Model) dispatch(ev game.Event) Model {
	prev := m.round
	m.round = m.engine.Reduce(prev, ev)
	if m.round != prev {
		m.cursor = m.round.Focus
	}
	if !prev.Status.Finished() {
		if res, ok := store.ResultOf(m.round, m.now()); ok {
			m.store.Save(res)
			log.Info().Bool("won", res.Won).Int("attempts", res.Attempts).Msg("round finished")
		}
	}
	return m
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Adivina la Palabra"))
	b.WriteString("\n")
	for i, row := range m.round.Rows {
		b.WriteString(m.renderRow(i, row))
		b.WriteString("\n")
	}

	action := "Iniciar"
	if m.started {
		action = "Reiniciar"
	}
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("[ctrl+n] %s   [enter] Adivinar", action)))
	b.WriteString("\n")
	if m.round.Message != "" {
		b.WriteString(m.styles.Message.Render(m.round.Message))
		b.WriteString("\n")
	}

	sum := m.store.Summary()
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Jugadas: %d  Ganadas: %d  Racha: %d  Mejor racha: %d",
		sum.Played, sum.Wins, sum.Streak, sum.BestStreak)))
	b.WriteString("\n")
	if recent := m.store.Recent(recentShown); len(recent) > 0 {
		b.WriteString(m.styles.Subtle.Render("Últimas: " + formatRecent(recent)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// recentShown is how many finished rounds the footer lists.
const recentShown = 3

func formatRecent(results []store.Result) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		mark := "✗"
		if r.Won {
			mark = "✓"
		}
		parts = append(parts, fmt.Sprintf("%s %s (%d)", r.Target, mark, r.Attempts))
	}
	return strings.Join(parts, ", ")
}

func (m Model) renderRow(i int, row game.Row) string {
	cells := make([]string, 0, game.WordLen)
	for j, l := range row.Letters {
		text := " "
		if l != 0 {
			text = string(l)
		}
		st := m.styles.Cell.Background(m.styles.Background(row.Feedback[j]))
		if m.cursor == (game.Cell{Row: i, Col: j}) && !row.Locked {
			st = st.Inherit(m.styles.Cursor)
			if l == 0 {
				text = "_"
			}
		}
		cells = append(cells, st.Render(text))
	}
	out := strings.Join(cells, " ")
	if row.Locked {
		out += m.styles.Locked.Render("  ·")
	}
	return out
}
