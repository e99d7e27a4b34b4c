package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed palabras.txt
var FS embed.FS

// ReadLines returns the non-blank, non-comment lines of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Vocabulary returns the embedded word list as written in palabras.txt.
func Vocabulary() ([]string, error) {
	f, err := FS.Open("palabras.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
