package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/user/vexo-checker/internal/logger"
)

const (
	// DefaultUserAgent is sent with every panel request.
	DefaultUserAgent = "VexoChecker/5.7"
	// DefaultTimeout bounds a single HTTP request.
	DefaultTimeout = 5 * time.Second

	defaultAttempts   = 3
	defaultRetryDelay = time.Second
	maxBodySize       = 1 << 20
)

// FetchResult is a successfully fetched subscription.
type FetchResult struct {
	Record *Record
	// APIURL is the normalized URL; the IP update endpoint is derived from it.
	APIURL string
}

// Fetcher downloads subscription records from the panel.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	attempts   int
	retryDelay time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithRetry sets the total number of attempts and the pause between them.
func WithRetry(attempts int, delay time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if attempts > 0 {
			f.attempts = attempts
		}
		f.retryDelay = delay
	}
}

// NewFetcher creates a fetcher. A nil client gets a DefaultTimeout client.
func NewFetcher(client *http.Client, opts ...FetcherOption) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	f := &Fetcher{
		client:     client,
		userAgent:  DefaultUserAgent,
		attempts:   defaultAttempts,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch resolves the API URL for rawURL and downloads the record.
//
// Connection failures and non-2xx responses are retried (strictly
// sequentially) until the attempt budget is spent and then reported as
// KindConnection. Invalid links, undecodable bodies and panel-reported
// errors fail immediately.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	log := logger.WithComponent("subscription")

	apiURL, err := NormalizeURL(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, &FetchError{Kind: KindInvalidURL, Err: err}
	}

	var rec *Record
	attempt := 0
	operation := func() error {
		attempt++
		r, retry, err := f.fetchOnce(ctx, apiURL)
		if err != nil {
			if !retry {
				return backoff.Permanent(err)
			}
			log.Debugf("Attempt %d/%d failed: %v", attempt, f.attempts, err)
			return err
		}
		rec = r
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(f.retryDelay), uint64(f.attempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &FetchError{Kind: KindConnection, Err: err}
	}

	log.Infof("Subscription fetched after %d attempt(s)", attempt)
	return &FetchResult{Record: rec, APIURL: apiURL}, nil
}

// fetchOnce performs one GET. retry reports whether the failure is transient.
func (f *Fetcher) fetchOnce(ctx context.Context, apiURL string) (rec *Record, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, false, &FetchError{Kind: KindInvalidURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, true, &FetchError{Kind: KindConnection, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, true, &FetchError{Kind: KindConnection, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, true, &FetchError{Kind: KindConnection, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, false, &FetchError{Kind: KindUnknown, Err: fmt.Errorf("failed to decode body: %w", err)}
	}
	if msg, ok := reportedError(fields["error"]); ok {
		return nil, false, &FetchError{Kind: KindServerReported, Err: errors.New(msg)}
	}
	if len(fields) == 0 {
		return nil, false, &FetchError{Kind: KindConnection, Err: errors.New("empty subscription payload")}
	}

	rec = &Record{}
	if err := json.Unmarshal(body, rec); err != nil {
		return nil, false, &FetchError{Kind: KindUnknown, Err: fmt.Errorf("failed to decode record: %w", err)}
	}
	return rec, false, nil
}

// reportedError reports whether the "error" field is set to a non-empty
// value and returns it as text.
func reportedError(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw), true
	}
	switch e := v.(type) {
	case nil:
		return "", false
	case string:
		return e, e != ""
	case bool:
		return "true", e
	case float64:
		return fmt.Sprint(e), e != 0
	case []interface{}:
		return string(raw), len(e) > 0
	case map[string]interface{}:
		return string(raw), len(e) > 0
	}
	return string(raw), true
}
