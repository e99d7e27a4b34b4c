// internal/store/memory.go
//
// In-memory record of finished rounds for the running process.
//
// Characteristics:
//   - Results are appended in the order rounds finish.
//   - Summary derives played / wins / streak counters from them.
//   - Nothing is written to disk; state is lost when the process exits.
//   - Not safe for concurrent use. The terminal program touches it from
//     its single update loop only.

package store

import (
	"time"

	"github.com/robalobadob/adivina/internal/game"
)

// Result is the outcome of one finished round.
type Result struct {
	Target     string
	Won        bool
	Attempts   int
	FinishedAt time.Time
}

// Summary aggregates results.
type Summary struct {
	Played     int
	Wins       int
	Streak     int // consecutive wins ending at the latest result
	BestStreak int
}

// Store records finished rounds.
type Store interface {
	// Save records a finished round.
	Save(r Result)

	// Summary returns the counters for everything saved so far.
	Summary() Summary

	// Recent returns up to n results, newest first.
	Recent(n int) []Result
}

// memory is a slice-backed Store implementation.
type memory struct {
	results []Result
	sum     Summary
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Save appends r and bumps the counters: a win extends the streak,
// a loss resets it.
func (m *memory) Save(r Result) {
	m.results = append(m.results, r)
	m.sum.Played++
	if r.Won {
		m.sum.Wins++
		m.sum.Streak++
		if m.sum.Streak > m.sum.BestStreak {
			m.sum.BestStreak = m.sum.Streak
		}
	} else {
		m.sum.Streak = 0
	}
}

func (m *memory) Summary() Summary { return m.sum }

func (m *memory) Recent(n int) []Result {
	n = max(0, min(n, len(m.results)))
	out := make([]Result, 0, n)
	for i := len(m.results) - 1; i >= len(m.results)-n; i-- {
		out = append(out, m.results[i])
	}
	return out
}

// ResultOf converts a finished round into a Result.
// ok is false while the round is still being played.
func ResultOf(r game.Round, at time.Time) (res Result, ok bool) {
	if !r.Status.Finished() {
		return Result{}, false
	}
	return Result{
		Target:     r.Target,
		Won:        r.Status == game.StatusWon,
		Attempts:   r.Attempts,
		FinishedAt: at.UTC(),
	}, true
}
