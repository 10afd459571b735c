package pairing

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokens = TokenMap{"alice": "t1", "bob": "t2", "carol": "t3", "dave": "t4"}

func testRequest() Request {
	return Request{
		Pairs:          []Pair{{A: "alice", B: "bob"}, {A: "carol", B: "dave"}},
		ClockLimitMin:  5,
		ClockIncrement: 3,
		Variant:        "standard",
		Rated:          true,
	}
}

func TestAssemblePlayersInOrder(t *testing.T) {
	p, err := Assemble(testRequest(), testTokens, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, "t1:t2,t3:t4", p.Players)
	assert.Equal(t, 300, p.ClockLimit)
	assert.Equal(t, 3, p.ClockIncrement)
	assert.True(t, p.Rated)
	assert.Zero(t, p.PairAt)
	assert.Zero(t, p.StartClocksAt)

	v := p.Values()
	assert.Equal(t, "t1:t2,t3:t4", v.Get("players"))
	assert.Equal(t, "300", v.Get("clock.limit"))
	assert.Equal(t, "3", v.Get("clock.increment"))
	assert.Equal(t, "true", v.Get("rated"))
	assert.False(t, v.Has("pairAt"))
	assert.False(t, v.Has("startClocksAt"))
	assert.False(t, v.Has("rules"))
}

func TestAssembleMissingToken(t *testing.T) {
	tokens := TokenMap{"alice": "t1", "bob": "t2", "carol": "t3"}
	_, err := Assemble(testRequest(), tokens, nil)
	var missing *MissingTokenError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "dave", missing.Username)
	assert.Equal(t, "Missing token for dave, is that an active player?", err.Error())
}

func TestAssembleEmptyTokenIsMissing(t *testing.T) {
	for _, tokens := range []TokenMap{
		{"alice": "", "bob": "t2", "carol": "t3", "dave": "t4"},
		{"alice": "t1", "bob": "t2", "carol": "t3", "dave": ""},
	} {
		p, err := Assemble(testRequest(), tokens, nil)
		var missing *MissingTokenError
		require.ErrorAs(t, err, &missing)
		assert.Empty(t, p.Players)
	}

	_, err := Assemble(testRequest(), TokenMap{"alice": "", "bob": "t2"}, nil)
	require.EqualError(t, err, "Missing token for alice, is that an active player?")
}

func TestAssembleTokensAreCaseSensitive(t *testing.T) {
	req := testRequest()
	req.Pairs = []Pair{{A: "Alice", B: "bob"}}
	_, err := Assemble(req, testTokens, nil)
	require.EqualError(t, err, "Missing token for Alice, is that an active player?")
}

func TestAssembleRandomColorKeepsPairs(t *testing.T) {
	req := testRequest()
	req.RandomColor = true
	swapped := map[int]bool{}
	for seed := uint64(0); seed < 64; seed++ {
		p, err := Assemble(req, testTokens, rand.New(rand.NewPCG(seed, seed+1)))
		require.NoError(t, err)
		games := strings.Split(p.Players, ",")
		require.Len(t, games, 2)
		for i, g := range games {
			sides := strings.Split(g, ":")
			require.Len(t, sides, 2)
			want := [][2]string{{"t1", "t2"}, {"t3", "t4"}}[i]
			assert.ElementsMatch(t, want[:], sides)
			if sides[0] != want[0] {
				swapped[i] = true
			}
		}
	}
	// 64 independent draws per pair: both pairs get swapped at least once.
	assert.True(t, swapped[0])
	assert.True(t, swapped[1])
}

func TestAssembleRandomColorIsSeedable(t *testing.T) {
	req := testRequest()
	req.RandomColor = true
	a, err := Assemble(req, testTokens, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := Assemble(req, testTokens, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	assert.Equal(t, a.Players, b.Players)
}

func TestAssembleRules(t *testing.T) {
	req := testRequest()
	req.Rules = []string{"noEarlyDraw", "bogus", "noAbort"}
	p, err := Assemble(req, testTokens, nil)
	require.NoError(t, err)
	assert.Equal(t, "noAbort,noEarlyDraw", p.Rules)
	assert.Equal(t, "noAbort,noEarlyDraw", p.Values().Get("rules"))
}

func TestAssembleTimestamps(t *testing.T) {
	req := testRequest()
	req.PairAt = time.Date(2026, 10, 20, 18, 30, 0, 0, time.UTC).UnixMilli()
	req.StartClocksAt = time.Date(2026, 10, 20, 18, 35, 0, 0, time.UTC).UnixMilli()
	p, err := Assemble(req, testTokens, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 20, 18, 30, 0, 0, time.UTC).UnixMilli(), p.PairAt)
	assert.Equal(t, time.Date(2026, 10, 20, 18, 35, 0, 0, time.UTC).UnixMilli(), p.StartClocksAt)
	assert.Equal(t, "1792521000000", p.Values().Get("pairAt"))
}

func TestAssembleVariantFallback(t *testing.T) {
	req := testRequest()
	req.Variant = "bughouse"
	p, err := Assemble(req, testTokens, nil)
	require.NoError(t, err)
	assert.Equal(t, "standard", p.Variant)
}

func TestClockSeconds(t *testing.T) {
	tests := []struct {
		minutes float64
		want    int
	}{
		{5, 300},
		{0.25, 15},
		{0.5, 30},
		{1.5, 90},
		{180, 10800},
	}
	for _, tt := range tests {
		if got := ClockSeconds(tt.minutes); got != tt.want {
			t.Fatalf("ClockSeconds(%v) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}
