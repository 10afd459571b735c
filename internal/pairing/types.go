package pairing

// Pair is one requested game between two usernames, in input order.
type Pair struct {
	A string
	B string
}

// TokenMap maps a username, case-sensitive as supplied, to its challenge token.
type TokenMap map[string]string

// Request is everything the operator asked for, after the form has been parsed.
type Request struct {
	Pairs          []Pair
	ClockLimitMin  float64
	ClockIncrement int
	Variant        string
	Rated          bool
	RandomColor    bool
	PairAt         int64 // epoch ms, 0 when absent
	StartClocksAt  int64 // epoch ms, 0 when absent
	Rules          []string
	FEN            string
	Message        string
}

type Game struct {
	ID    string `json:"id"`
	White string `json:"white"`
	Black string `json:"black"`
}

// BulkPairing is the batch created by the remote server.
type BulkPairing struct {
	ID            string `json:"id"`
	Games         []Game `json:"games"`
	Variant       string `json:"variant,omitempty"`
	Rated         bool   `json:"rated"`
	PairAt        int64  `json:"pairAt,omitempty"`
	StartClocksAt int64  `json:"startClocksAt,omitempty"`
	ScheduledAt   int64  `json:"scheduledAt,omitempty"`
}

// Flatten lists every username of every pair in order. Duplicates are kept.
func Flatten(pairs []Pair) []string {
	out := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		out = append(out, p.A, p.B)
	}
	return out
}
