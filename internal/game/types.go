// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Mark: per-cell feedback of an evaluated row.
//   - Status: coarse lifecycle of a round.
//   - Row / Round: the grid and everything the presentation layer renders.

package game

const (
	NumRows = 5
	WordLen = 5
)

// Mark represents the evaluation result for a single cell.
// Possible values:
//   - "neutral": cell was empty (or has not been evaluated).
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the target but at a different position.
//   - "absent":  letter does not exist in the target.
type Mark string

const (
	MarkNeutral Mark = "neutral"
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Status is the round lifecycle.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "not_started"
	}
}

// Finished reports whether s is terminal.
func (s Status) Finished() bool { return s == StatusWon || s == StatusLost }

// Cell addresses one letter slot in the grid.
type Cell struct {
	Row int
	Col int
}

func (c Cell) valid() bool {
	return c.Row >= 0 && c.Row < NumRows && c.Col >= 0 && c.Col < WordLen
}

// Row is one attempt slot. A zero rune in Letters is an empty cell.
type Row struct {
	Letters  [WordLen]rune
	Feedback [WordLen]Mark
	Locked   bool
}

// Empty reports whether every cell of the row is empty.
func (r Row) Empty() bool {
	for _, l := range r.Letters {
		if l != 0 {
			return false
		}
	}
	return true
}

// Word joins the row's letters, skipping empty cells.
func (r Row) Word() string {
	out := make([]rune, 0, WordLen)
	for _, l := range r.Letters {
		if l != 0 {
			out = append(out, l)
		}
	}
	return string(out)
}

// Round holds the full state of one playthrough.
// It is a plain value; the engine returns a new Round for every event.
type Round struct {
	Target   string       // Solution word (uppercase); empty until started.
	Rows     [NumRows]Row // Attempt slots, top to bottom.
	Status   Status       // Lifecycle tag.
	Message  string       // Outcome text shown under the grid.
	Focus    Cell         // Suggested caret position after the last event.
	Attempts int          // Evaluated non-empty rows.
}

// Active returns the index of the first unlocked row, or -1.
func (r Round) Active() int {
	for i, row := range r.Rows {
		if !row.Locked {
			return i
		}
	}
	return -1
}

// NextEmpty returns the index of the first unlocked row with no letters, or -1.
func (r Round) NextEmpty() int {
	for i, row := range r.Rows {
		if !row.Locked && row.Empty() {
			return i
		}
	}
	return -1
}

func emptyRows() [NumRows]Row {
	var rows [NumRows]Row
	for i := range rows {
		rows[i].Feedback = neutralFeedback()
	}
	return rows
}

// NewRound returns the NotStarted state: an empty, unlocked, neutral grid.
func NewRound() Round {
	return Round{Rows: emptyRows()}
}
