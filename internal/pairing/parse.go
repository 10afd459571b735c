package pairing

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidPlayers = errors.New("Invalid players format")

var separators = regexp.MustCompile(`[\s,]+`)

// ParsePairs reads one pair of usernames per non-empty line. A single bad line
// rejects the whole input.
func ParsePairs(raw string) ([]Pair, error) {
	lines := strings.Split(raw, "\n")
	pairs := make([]Pair, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(separators.ReplaceAllString(line, " "), " ")
		if len(fields) < 2 {
			return nil, ErrInvalidPlayers
		}
		a := strings.TrimSpace(fields[0])
		b := strings.TrimSpace(fields[1])
		if a == "" || b == "" {
			return nil, ErrInvalidPlayers
		}
		pairs = append(pairs, Pair{A: a, B: b})
	}
	return pairs, nil
}
