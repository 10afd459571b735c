package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"arbiter/internal/pairing"
)

// AdminChallengeDescription is shown to the players whose tokens get minted.
const AdminChallengeDescription = "Games scheduled by a tournament organizer with the arbiter console"

// AdminChallengeTokens mints one challenge token per distinct username.
func (c *Client) AdminChallengeTokens(ctx context.Context, usernames []string) (pairing.TokenMap, error) {
	resp, err := c.postForm(ctx, "/api/token/admin-challenge", url.Values{
		"users":       {strings.Join(usernames, ",")},
		"description": {AdminChallengeDescription},
	})
	if err != nil {
		return nil, fmt.Errorf("requesting challenge tokens: %w", err)
	}
	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, newAPIError(resp.StatusCode, body)
		}
		return nil, fmt.Errorf("decoding challenge tokens: %w", err)
	}
	if msg, ok := raw["error"]; ok {
		return nil, &ErrorResponse{Message: rawString(msg)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, body)
	}

	tokens := make(pairing.TokenMap, len(raw))
	for user, v := range raw {
		var token *string
		if err := json.Unmarshal(v, &token); err != nil {
			return nil, fmt.Errorf("decoding challenge token for %s: %w", user, err)
		}
		// null or empty means no token was minted for that user
		if token == nil || *token == "" {
			continue
		}
		tokens[user] = *token
	}
	return tokens, nil
}

// rawString unquotes a JSON string and falls back to the raw text for anything else.
func rawString(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
