package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/adivina/internal/game"
	"github.com/robalobadob/adivina/internal/store"
)

func newTestModel(st store.Store) Model {
	e := game.New(game.PickerFunc(func() string { return "BANCO" }))
	return New(e, st, DefaultStyles(false))
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typed(s string) []tea.Msg {
	var out []tea.Msg
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

var (
	keyStart  = tea.KeyMsg{Type: tea.KeyCtrlN}
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyBack   = tea.KeyMsg{Type: tea.KeyBackspace}
	keyLeft   = tea.KeyMsg{Type: tea.KeyLeft}
	keyUp     = tea.KeyMsg{Type: tea.KeyUp}
	keyEscape = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestTypingFollowsEngineFocus(t *testing.T) {
	m := press(newTestModel(nil), keyStart)
	m = press(m, typed("ban")...)

	assert.Equal(t, "BAN", m.Round().Rows[0].Word())
	assert.Equal(t, game.Cell{Row: 0, Col: 3}, m.Cursor())
}

func TestBackspace(t *testing.T) {
	m := press(newTestModel(nil), keyStart)
	m = press(m, typed("ban")...)

	// Empty cell: clears the previous one and steps back.
	m = press(m, keyBack)
	assert.Equal(t, "BA", m.Round().Rows[0].Word())
	assert.Equal(t, game.Cell{Row: 0, Col: 2}, m.Cursor())

	// Cell with a letter: clears it in place.
	m = press(m, typed("n")...)
	m = press(m, keyLeft, keyBack)
	assert.Equal(t, "BA", m.Round().Rows[0].Word())
	assert.Equal(t, game.Cell{Row: 0, Col: 2}, m.Cursor())
}

func TestWinIsRecorded(t *testing.T) {
	st := store.NewMemoryStore()
	m := press(newTestModel(st), keyStart)
	m = press(m, typed("banco")...)
	m = press(m, keyEnter)

	require.Equal(t, game.StatusWon, m.Round().Status)
	assert.Equal(t, store.Summary{Played: 1, Wins: 1, Streak: 1, BestStreak: 1}, st.Summary())

	view := m.View()
	assert.Contains(t, view, "BANCO")
	assert.Contains(t, view, "Reiniciar")
	assert.Contains(t, view, "Ganadas: 1")

	// Further keys on a finished round do not record it twice.
	m = press(m, keyEnter)
	assert.Equal(t, 1, st.Summary().Played)
}

func TestLossIsRecorded(t *testing.T) {
	st := store.NewMemoryStore()
	m := press(newTestModel(st), keyStart)
	for i := 0; i < game.NumRows; i++ {
		m = press(m, typed("mango")...)
		m = press(m, keyEnter)
	}

	require.Equal(t, game.StatusLost, m.Round().Status)
	assert.Equal(t, store.Summary{Played: 1}, st.Summary())
	assert.Contains(t, m.View(), "Perdiste")
}

func TestIgnoredInputKeepsCursor(t *testing.T) {
	m := press(newTestModel(nil), keyStart)
	m = press(m, typed("mango")...)
	m = press(m, keyEnter)
	require.Equal(t, game.Cell{Row: 1, Col: 0}, m.Cursor())

	m = press(m, keyUp)
	before := m.Round()
	m = press(m, typed("x")...)
	assert.Equal(t, before, m.Round(), "row 0 is locked")
	assert.Equal(t, game.Cell{Row: 0, Col: 0}, m.Cursor())
}

func TestStartThenRestart(t *testing.T) {
	m := newTestModel(nil)
	assert.Contains(t, m.View(), "[ctrl+n] Iniciar")
	assert.Equal(t, game.StatusNotStarted, m.Round().Status)

	m = press(m, keyStart)
	m = press(m, typed("banco")...)
	m = press(m, keyEnter)
	require.Equal(t, game.StatusWon, m.Round().Status)

	m = press(m, keyStart)
	assert.Equal(t, game.StatusInProgress, m.Round().Status)
	assert.True(t, m.Round().Rows[0].Empty())
	assert.Equal(t, game.Cell{}, m.Cursor())
}

func TestGuessBeforeStart(t *testing.T) {
	m := press(newTestModel(nil), typed("banco")...)
	m = press(m, keyEnter)
	assert.Equal(t, game.StatusWon, m.Round().Status)
}

func TestQuit(t *testing.T) {
	_, cmd := newTestModel(nil).Update(keyEscape)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHighlightMisses(t *testing.T) {
	assert.Equal(t, DefaultStyles(false).Background(game.MarkNeutral), DefaultStyles(false).Background(game.MarkAbsent))
	assert.NotEqual(t, DefaultStyles(true).Background(game.MarkNeutral), DefaultStyles(true).Background(game.MarkAbsent))
	assert.Equal(t, clrGreen, DefaultStyles(false).Background(game.MarkExact))
	assert.Equal(t, clrOrange, DefaultStyles(false).Background(game.MarkPresent))
}

func TestGuessInLowerRowMovesToEmptyRow(t *testing.T) {
	keyDown := tea.KeyMsg{Type: tea.KeyDown}
	m := press(newTestModel(nil), keyStart, keyDown, keyDown)
	m = press(m, typed("mango")...)
	require.Equal(t, "MANGO", m.Round().Rows[2].Word())

	m = press(m, keyEnter)
	assert.True(t, m.Round().Rows[2].Locked)
	assert.Equal(t, game.StatusInProgress, m.Round().Status)
	assert.Equal(t, game.Cell{Row: 0, Col: 0}, m.Cursor())
	assert.True(t, m.Round().Rows[m.Cursor().Row].Empty())
}

func TestViewListsRecentRounds(t *testing.T) {
	m := newTestModel(nil)
	assert.NotContains(t, m.View(), "Últimas:")

	m = press(m, keyStart)
	m = press(m, typed("banco")...)
	m = press(m, keyEnter)
	assert.Contains(t, m.View(), "Últimas: BANCO ✓ (1)")

	m = press(m, keyStart)
	for i := 0; i < game.NumRows; i++ {
		m = press(m, typed("mango")...)
		m = press(m, keyEnter)
	}
	assert.Contains(t, m.View(), "Últimas: BANCO ✗ (5), BANCO ✓ (1)")
}
