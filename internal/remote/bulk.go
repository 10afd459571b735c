package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"arbiter/internal/pairing"
)

// CreateBulkPairing schedules every game of payload in one call.
func (c *Client) CreateBulkPairing(ctx context.Context, payload pairing.Payload) (pairing.BulkPairing, error) {
	resp, err := c.postForm(ctx, "/api/bulk-pairing", payload.Values())
	if err != nil {
		return pairing.BulkPairing{}, fmt.Errorf("creating bulk pairing: %w", err)
	}
	body, err := readBody(resp)
	if err != nil {
		return pairing.BulkPairing{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return pairing.BulkPairing{}, newAPIError(resp.StatusCode, body)
	}
	var out pairing.BulkPairing
	if err := json.Unmarshal(body, &out); err != nil {
		return pairing.BulkPairing{}, fmt.Errorf("decoding bulk pairing: %w", err)
	}
	return out, nil
}
