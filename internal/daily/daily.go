// Package daily picks a deterministic word of the day so that every player
// gets the same target on the same date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/adivina/internal/words"
)

// DefaultSalt is used when DAILY_SALT is not configured.
const DefaultSalt = "local_dev_salt"

// Picker draws the word of the day from a vocabulary.
// Restarting on the same day yields the same target.
type Picker struct {
	list *words.List
	salt string
	now  func() time.Time
}

// NewPicker returns a Picker over list. An empty salt falls back to DefaultSalt.
func NewPicker(list *words.List, salt string) *Picker {
	if salt == "" {
		salt = DefaultSalt
	}
	return &Picker{list: list, salt: salt, now: time.Now}
}

// Pick returns today's word.
func (p *Picker) Pick() string {
	return p.list.At(p.indexFor(p.now()))
}

// indexFor maps the UTC calendar day of t onto the list. The salted HMAC
// keeps the order of words unguessable from the list alone.
func (p *Picker) indexFor(t time.Time) int {
	mac := hmac.New(sha256.New, []byte(p.salt))
	mac.Write([]byte(t.UTC().Format(time.DateOnly)))
	n := binary.BigEndian.Uint64(mac.Sum(nil))
	return int(n % uint64(p.list.Len()))
}
