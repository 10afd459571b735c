package pairing

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Pair
	}{
		{
			name: "space separated",
			raw:  "alice bob\ncarol dave",
			want: []Pair{{A: "alice", B: "bob"}, {A: "carol", B: "dave"}},
		},
		{
			name: "commas and runs of whitespace",
			raw:  "alice,bob\ncarol ,\t dave\n",
			want: []Pair{{A: "alice", B: "bob"}, {A: "carol", B: "dave"}},
		},
		{
			name: "blank lines and crlf",
			raw:  "\r\n  alice   bob  \r\n\r\n\ncarol dave\r\n",
			want: []Pair{{A: "alice", B: "bob"}, {A: "carol", B: "dave"}},
		},
		{
			name: "extra names ignored",
			raw:  "alice bob carol",
			want: []Pair{{A: "alice", B: "bob"}},
		},
		{
			name: "case kept",
			raw:  "Alice BOB",
			want: []Pair{{A: "Alice", B: "BOB"}},
		},
		{
			name: "empty input",
			raw:  "  \n\n",
			want: []Pair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePairs(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ParsePairs(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParsePairsRejectsWholeInput(t *testing.T) {
	tests := []string{
		"alice",
		"alice bob\ncarol\ndave erin",
		"alice bob\n,carol dave",
		"alice,",
	}
	for _, raw := range tests {
		got, err := ParsePairs(raw)
		require.ErrorIs(t, err, ErrInvalidPlayers, "input %q", raw)
		require.Equal(t, "Invalid players format", err.Error())
		require.Nil(t, got)
	}
}

func TestParsePairsWellFormedProperty(t *testing.T) {
	faker := gofakeit.New(42)
	seps := []string{" ", ",", " , ", "\t", ",,", "  "}
	for round := 0; round < 50; round++ {
		n := 1 + round%7
		want := make([]Pair, 0, n)
		var sb strings.Builder
		for i := 0; i < n; i++ {
			p := Pair{A: faker.Username(), B: faker.Username()}
			want = append(want, p)
			sb.WriteString(" " + p.A + seps[(round+i)%len(seps)] + p.B + " \n")
			if i%3 == 0 {
				sb.WriteString("\n")
			}
		}
		got, err := ParsePairs(sb.String())
		require.NoError(t, err)
		require.Len(t, got, n)
		for i := range got {
			require.NotEmpty(t, got[i].A)
			require.NotEmpty(t, got[i].B)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("round %d mismatch (-want +got):\n%s", round, diff)
		}
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten([]Pair{{A: "a", B: "b"}, {A: "b", B: "c"}})
	require.Equal(t, []string{"a", "b", "b", "c"}, got)
}
