package schedule

import (
	"context"

	"arbiter/internal/pairing"
)

type FakeRemote struct {
	TokensFunc func(ctx context.Context, usernames []string) (pairing.TokenMap, error)
	CreateFunc func(ctx context.Context, payload pairing.Payload) (pairing.BulkPairing, error)

	TokenCalls  [][]string
	CreateCalls []pairing.Payload
}

func (f *FakeRemote) AdminChallengeTokens(ctx context.Context, usernames []string) (pairing.TokenMap, error) {
	f.TokenCalls = append(f.TokenCalls, usernames)
	if f.TokensFunc == nil {
		return pairing.TokenMap{}, nil
	}
	return f.TokensFunc(ctx, usernames)
}

func (f *FakeRemote) CreateBulkPairing(ctx context.Context, payload pairing.Payload) (pairing.BulkPairing, error) {
	f.CreateCalls = append(f.CreateCalls, payload)
	if f.CreateFunc == nil {
		return pairing.BulkPairing{ID: "batch"}, nil
	}
	return f.CreateFunc(ctx, payload)
}
