// internal/words/words.go
//
// Provides the vocabulary the engine draws targets from.
//
// Responsibilities:
//   - Load the embedded word list, or a file given through WORDS_FILE / --words.
//   - Normalize entries (uppercase, exactly 5 letters) and drop duplicates.
//   - Pick a target uniformly at random.
//
// Constraints:
//   • Words must be 5 letters; anything else is skipped while loading.
//   • The embedded list is parsed once (sync.Once).

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/adivina/assets"
)

// Length is the number of letters in every word.
const Length = 5

// ErrEmptyList is returned when a source yields no usable word.
var ErrEmptyList = errors.New("words: list is empty")

// List is an immutable vocabulary.
type List struct {
	words []string
	set   map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultList *List
)

// Default returns the embedded vocabulary.
// The embedded file is part of the binary, so a failure here is a build bug.
func Default() *List {
	defaultOnce.Do(func() {
		lines, err := assets.Vocabulary()
		if err != nil {
			panic(fmt.Sprintf("words: embedded vocabulary: %v", err))
		}
		l, err := New(lines)
		if err != nil {
			panic(fmt.Sprintf("words: embedded vocabulary: %v", err))
		}
		defaultList = l
	})
	return defaultList
}

// New builds a List from raw entries, keeping only valid words.
// Order of first appearance is preserved.
func New(entries []string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		w := strings.ToUpper(strings.TrimSpace(e))
		if !isWord(w) {
			if w != "" {
				log.Debug().Str("entry", e).Msg("skipping invalid word")
			}
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Load returns the vocabulary at path, or the embedded one if path is empty.
func Load(path string) (*List, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	l, err := New(lines)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("words", l.Len()).Msg("loaded word list")
	return l, nil
}

// isWord reports whether w is exactly Length uppercase letters.
func isWord(w string) bool {
	if utf8.RuneCountInString(w) != Length {
		return false
	}
	for _, r := range w {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// Pick returns a cryptographically random word from the list.
func (l *List) Pick() string {
	return l.words[randomIndex(len(l.words))]
}

// At returns the i-th word.
func (l *List) At(i int) string { return l.words[i] }

// Len reports how many words the list holds.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether w (any case) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToUpper(w)]
	return ok
}

func randomIndex(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}
