package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const conflictCode = "IP_CONFLICT"

// Updater reports the client's current public IP to the panel.
type Updater struct {
	client *http.Client
}

// NewUpdater creates an updater. A nil client gets a DefaultTimeout client.
func NewUpdater(client *http.Client) *Updater {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Updater{client: client}
}

type updateRequest struct {
	Token string `json:"token"`
	IP    string `json:"ip"`
}

type updateResponse struct {
	ErrorCode string `json:"error_code"`
}

// UpdateIP posts {token, ip} to the update_ip endpoint next to apiURL.
// The token is taken from the original subscription link.
func (u *Updater) UpdateIP(ctx context.Context, apiURL, subURL, ip string) error {
	payload, err := json.Marshal(updateRequest{Token: Token(subURL), IP: ip})
	if err != nil {
		return &UpdateError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, UpdateURL(apiURL), bytes.NewReader(payload))
	if err != nil {
		return &UpdateError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return &UpdateError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	var body updateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return &UpdateError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}
	if resp.StatusCode == http.StatusConflict && body.ErrorCode == conflictCode {
		return ErrIPConflict
	}
	return &UpdateError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s (error_code=%q)", resp.Status, body.ErrorCode)}
}
