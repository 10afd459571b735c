package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Account returns the owner of the API token.
func (c *Client) Account(ctx context.Context) (Account, error) {
	resp, err := c.get(ctx, "/api/account")
	if err != nil {
		return Account{}, fmt.Errorf("fetching account: %w", err)
	}
	body, err := readBody(resp)
	if err != nil {
		return Account{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Account{}, newAPIError(resp.StatusCode, body)
	}
	var acct Account
	if err := json.Unmarshal(body, &acct); err != nil {
		return Account{}, fmt.Errorf("decoding account: %w", err)
	}
	if acct.Username == "" {
		return Account{}, fmt.Errorf("account has no username")
	}
	return acct, nil
}
