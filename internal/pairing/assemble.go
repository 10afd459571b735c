package pairing

import (
	"fmt"
	"math"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"
)

// MissingTokenError reports a username the token endpoint returned nothing for.
type MissingTokenError struct {
	Username string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("Missing token for %s, is that an active player?", e.Username)
}

// Payload is the form body of a bulk pairing creation request.
type Payload struct {
	Players        string
	ClockLimit     int // seconds
	ClockIncrement int
	Variant        string
	Rated          bool
	PairAt         int64 // epoch ms, 0 when absent
	StartClocksAt  int64 // epoch ms, 0 when absent
	Rules          string
	FEN            string
	Message        string
}

func (p Payload) Values() url.Values {
	v := url.Values{}
	v.Set("players", p.Players)
	v.Set("clock.limit", strconv.Itoa(p.ClockLimit))
	v.Set("clock.increment", strconv.Itoa(p.ClockIncrement))
	v.Set("variant", p.Variant)
	v.Set("rated", strconv.FormatBool(p.Rated))
	if p.PairAt > 0 {
		v.Set("pairAt", strconv.FormatInt(p.PairAt, 10))
	}
	if p.StartClocksAt > 0 {
		v.Set("startClocksAt", strconv.FormatInt(p.StartClocksAt, 10))
	}
	if p.Rules != "" {
		v.Set("rules", p.Rules)
	}
	if p.FEN != "" {
		v.Set("fen", p.FEN)
	}
	if p.Message != "" {
		v.Set("message", p.Message)
	}
	return v
}

// ClockSeconds converts the form's clock limit in minutes to seconds.
func ClockSeconds(minutes float64) int {
	return int(math.Round(minutes * 60))
}

// Assemble builds the creation payload. Every username must have a non-empty
// token; the first one missing aborts the whole batch. With RandomColor set, each pair is
// swapped on its own coin flip from rng.
func Assemble(req Request, tokens TokenMap, rng *rand.Rand) (Payload, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	games := make([]string, 0, len(req.Pairs))
	for _, p := range req.Pairs {
		white := tokens[p.A]
		if white == "" {
			return Payload{}, &MissingTokenError{Username: p.A}
		}
		black := tokens[p.B]
		if black == "" {
			return Payload{}, &MissingTokenError{Username: p.B}
		}
		if req.RandomColor && rng.IntN(2) == 1 {
			white, black = black, white
		}
		games = append(games, white+":"+black)
	}

	return Payload{
		Players:        strings.Join(games, ","),
		ClockLimit:     ClockSeconds(req.ClockLimitMin),
		ClockIncrement: req.ClockIncrement,
		Variant:        NormalizeVariant(req.Variant),
		Rated:          req.Rated,
		PairAt:         req.PairAt,
		StartClocksAt:  req.StartClocksAt,
		Rules:          RuleList(req.Rules),
		FEN:            strings.TrimSpace(req.FEN),
		Message:        strings.TrimSpace(req.Message),
	}, nil
}
