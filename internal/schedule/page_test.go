package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arbiter/internal/pairing"
	"arbiter/internal/remote"
)

func TestPageFeedbackLifecycle(t *testing.T) {
	page := NewPage(Form{ClockLimit: "3", ClockIncrement: "2"})
	assert.Equal(t, FeedbackNone, page.Feedback.Kind())
	assert.False(t, page.Dirty())

	f := &FakeRemote{
		TokensFunc: func(ctx context.Context, usernames []string) (pairing.TokenMap, error) {
			return nil, &remote.ErrorResponse{Message: "rate limited"}
		},
	}
	s := newSubmitter(f)
	page.Submit(context.Background(), s, baseForm())
	require.True(t, page.Dirty())
	msg, ok := page.Feedback.Message()
	require.True(t, ok)
	assert.Equal(t, "rate limited", msg)
	assert.Empty(t, f.CreateCalls)
	assert.Equal(t, "alice bob\ncarol dave", page.Form.Players)

	page.MarkDrawn()
	f.TokensFunc = func(ctx context.Context, usernames []string) (pairing.TokenMap, error) {
		return fourTokens, nil
	}
	page.Submit(context.Background(), s, baseForm())
	assert.True(t, page.Dirty())
	result, ok := page.Feedback.Result()
	require.True(t, ok)
	assert.Equal(t, "batch", result.ID)
	_, failed := page.Feedback.Message()
	assert.False(t, failed)
}

func TestPageFailureIsStringifiedBody(t *testing.T) {
	f := &FakeRemote{
		TokensFunc: func(ctx context.Context, usernames []string) (pairing.TokenMap, error) {
			return fourTokens, nil
		},
		CreateFunc: func(ctx context.Context, p pairing.Payload) (pairing.BulkPairing, error) {
			return pairing.BulkPairing{}, &remote.APIError{Status: 404, Body: `{"error":"bad request"}`}
		},
	}
	page := NewPage(Form{})
	page.Submit(context.Background(), newSubmitter(f), baseForm())
	msg, ok := page.Feedback.Message()
	require.True(t, ok)
	assert.Equal(t, `{"error":"bad request"}`, msg)
	assert.Equal(t, "failure", page.Feedback.Kind().String())
}
