// internal/game/engine.go
//
// Guess engine for a single round.
// Responsibilities:
//   - Start/restart rounds with a target drawn from a Picker.
//   - Apply cell edits and delete-on-empty events, honouring row locks.
//   - Evaluate the active row and drive InProgress → Won/Lost.
//
// Notes:
//   - Reduce never mutates its input: Round is a value and every event
//     yields a new one. Presentation code subscribes by re-rendering it.
//   - Invalid input is ignored, never reported. Out-of-range cells are a
//     caller bug and are dropped as well.
package game

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/adivina/internal/words"
)

const (
	wonMessage  = "¡Felicidades! ¡Adivinaste la palabra correctamente! La palabra correcta era %q."
	lostMessage = "Perdiste, lo siento. La palabra correcta era %q."
)

// Picker chooses the target word for a new round.
type Picker interface {
	Pick() string
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func() string

func (f PickerFunc) Pick() string { return f() }

// Event is anything the input surface can send to the engine.
type Event interface{ event() }

// Start begins the first round.
type Start struct{}

// Restart discards the current round and begins a new one.
type Restart struct{}

// EditCell sets a single cell. Only the first rune of Text is used;
// an empty Text clears the cell.
type EditCell struct {
	Row  int
	Col  int
	Text string
}

// DeleteBack is sent when delete is pressed on an already empty cell.
type DeleteBack struct {
	Row int
	Col int
}

// Submit evaluates the active row.
type Submit struct{}

func (Start) event()      {}
func (Restart) event()    {}
func (EditCell) event()   {}
func (DeleteBack) event() {}
func (Submit) event()     {}

// Engine applies events to rounds.
type Engine struct {
	picker Picker
}

// New constructs an engine.
// If p is nil, targets are drawn from the embedded vocabulary.
func New(p Picker) *Engine {
	if p == nil {
		p = words.Default()
	}
	return &Engine{picker: p}
}

// Reduce returns the state that results from applying ev to r.
func (e *Engine) Reduce(r Round, ev Event) Round {
	switch ev := ev.(type) {
	case Start, Restart:
		return e.start()
	case EditCell:
		return editCell(r, ev)
	case DeleteBack:
		return deleteBack(r, ev)
	case Submit:
		return e.submit(r)
	}
	return r
}

// start builds a fresh round. Nothing from the previous round survives.
func (e *Engine) start() Round {
	r := NewRound()
	r.Target = e.pickTarget()
	r.Status = StatusInProgress
	log.Debug().Msg("round started")
	return r
}

func (e *Engine) pickTarget() string {
	return strings.ToUpper(strings.TrimSpace(e.picker.Pick()))
}

func editCell(r Round, ev EditCell) Round {
	c := Cell{Row: ev.Row, Col: ev.Col}
	if !c.valid() || r.Rows[c.Row].Locked {
		return r
	}
	ch, ok := normalizeLetter(ev.Text)
	if !ok {
		return r
	}
	r.Rows[c.Row].Letters[c.Col] = ch
	r.Focus = c
	if ch != 0 && c.Col < WordLen-1 {
		r.Focus.Col++
	}
	return r
}

func deleteBack(r Round, ev DeleteBack) Round {
	c := Cell{Row: ev.Row, Col: ev.Col}
	if !c.valid() || r.Rows[c.Row].Locked {
		return r
	}
	if r.Rows[c.Row].Letters[c.Col] != 0 || c.Col == 0 {
		return r
	}
	c.Col--
	r.Rows[c.Row].Letters[c.Col] = 0
	r.Focus = c
	return r
}

// normalizeLetter maps input text to a cell value.
// "" clears the cell; otherwise the first rune must be a letter.
func normalizeLetter(text string) (rune, bool) {
	if text == "" {
		return 0, true
	}
	ch, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsLetter(ch) {
		return 0, false
	}
	return unicode.ToUpper(ch), true
}

// submit evaluates the first unlocked row that has any letter in it.
//
// State transitions:
//   - Row spells the target → Won, every row locked.
//   - Otherwise the row is locked and the next unlocked, empty row becomes active.
//   - No empty row left → Lost, every row locked.
func (e *Engine) submit(r Round) Round {
	if r.Status.Finished() {
		return r
	}
	if r.Status == StatusNotStarted {
		// Guessing before an explicit start picks the target now and keeps
		// whatever was typed.
		r.Target = e.pickTarget()
		r.Status = StatusInProgress
		log.Debug().Msg("round started on first guess")
	}

	idx := -1
	for i, row := range r.Rows {
		if !row.Locked && !row.Empty() {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Nothing typed: show a neutral row and stay put.
		idx = r.Active()
		if idx < 0 {
			return r
		}
		r.Rows[idx].Feedback = neutralFeedback()
		r.Focus = Cell{Row: idx}
		return r
	}

	row := &r.Rows[idx]
	row.Feedback = Score(r.Target, row.Letters)
	r.Attempts++
	log.Debug().Int("row", idx).Int("attempts", r.Attempts).Msg("row evaluated")

	if row.Word() == r.Target {
		for i := range r.Rows {
			r.Rows[i].Locked = true
			if i > idx {
				r.Rows[i].Feedback = neutralFeedback()
			}
		}
		r.Status = StatusWon
		r.Message = fmt.Sprintf(wonMessage, r.Target)
		log.Debug().Int("attempts", r.Attempts).Msg("round won")
		return r
	}

	row.Locked = true
	if next := r.NextEmpty(); next >= 0 {
		r.Focus = Cell{Row: next}
		r.Message = ""
		return r
	}

	// Every remaining row already holds a guess: the round is over.
	for i := range r.Rows {
		r.Rows[i].Locked = true
	}
	r.Status = StatusLost
	r.Message = fmt.Sprintf(lostMessage, r.Target)
	log.Debug().Int("attempts", r.Attempts).Msg("round lost")
	return r
}

// Score classifies every cell of a row against target.
//
// A letter scores Present whenever it appears anywhere in the target,
// regardless of how many times it is repeated in the guess.
func Score(target string, letters [WordLen]rune) [WordLen]Mark {
	var out [WordLen]Mark
	t := []rune(target)
	for i, l := range letters {
		switch {
		case l == 0:
			out[i] = MarkNeutral
		case i < len(t) && t[i] == l:
			out[i] = MarkExact
		case strings.ContainsRune(target, l):
			out[i] = MarkPresent
		default:
			out[i] = MarkAbsent
		}
	}
	return out
}

func neutralFeedback() [WordLen]Mark {
	var out [WordLen]Mark
	for i := range out {
		out[i] = MarkNeutral
	}
	return out
}
