package subscription

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activeRecord = `{"username":"alice","status_key":"table_status_active","last_ip":"1.2.3.4","dou_ip1":"10.0.0.53"}`

// flakyTransport fails the first `failures` round trips with a network
// error and answers the rest with body.
type flakyTransport struct {
	failures int32
	body     string
	calls    int32
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	n := atomic.AddInt32(&f.calls, 1)
	if n <= f.failures {
		return nil, errors.New("dial tcp: connection refused")
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(f.body)),
		Request:    req,
	}, nil
}

func newTestFetcher(rt http.RoundTripper) *Fetcher {
	return NewFetcher(&http.Client{Transport: rt, Timeout: time.Second}, WithRetry(3, time.Millisecond))
}

func TestFetchInvalidURLMakesNoRequest(t *testing.T) {
	rt := &flakyTransport{body: activeRecord}
	f := newTestFetcher(rt)

	_, err := f.Fetch(context.Background(), "https://panel.example.com/profile/abc")
	require.Error(t, err)
	assert.Equal(t, KindInvalidURL, KindOf(err))
	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Zero(t, atomic.LoadInt32(&rt.calls))
}

func TestFetchRecoversAfterTwoFailures(t *testing.T) {
	rt := &flakyTransport{failures: 2, body: activeRecord}
	f := newTestFetcher(rt)

	res, err := f.Fetch(context.Background(), "https://panel.example.com/sub/abc")
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&rt.calls))
	assert.Equal(t, "alice", res.Record.Username)
	assert.Equal(t, "https://panel.example.com/api/sub/abc", res.APIURL)
}

func TestFetchGivesUpAfterThreeFailures(t *testing.T) {
	rt := &flakyTransport{failures: 10, body: activeRecord}
	f := newTestFetcher(rt)

	_, err := f.Fetch(context.Background(), "https://panel.example.com/sub/abc")
	require.Error(t, err)
	assert.Equal(t, KindConnection, KindOf(err))
	assert.Equal(t, int32(3), atomic.LoadInt32(&rt.calls))
}

func TestFetchAgainstServer(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sub/tok", r.URL.Path)
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, activeRecord)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), WithRetry(3, time.Millisecond))
	res, err := f.Fetch(context.Background(), srv.URL+"/sub/tok")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.Equal(t, "1.2.3.4", res.Record.LastIP)
	assert.Equal(t, StatusActive, res.Record.Status())
}

func TestFetchPermanentFailuresAreNotRetried(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind ErrorKind
	}{
		{"server reported error", `{"error":"subscription not found"}`, KindServerReported},
		{"malformed json", `<html>maintenance</html>`, KindUnknown},
		{"empty payload", `{}`, KindConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			f := NewFetcher(srv.Client(), WithRetry(3, time.Millisecond))
			_, err := f.Fetch(context.Background(), srv.URL+"/sub/tok")
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
		})
	}
}

func TestFetchIgnoresEmptyErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"error":"","username":"bob","status_key":"limited"}`)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), WithUserAgent("custom/1.0"))
	res, err := f.Fetch(context.Background(), srv.URL+"/api/sub/tok")
	require.NoError(t, err)
	assert.Equal(t, "bob", res.Record.Username)
	assert.Equal(t, StatusLimited, res.Record.Status())
}

func TestReportedError(t *testing.T) {
	cases := map[string]bool{
		`"boom"`:  true,
		`""`:      false,
		`null`:    false,
		`false`:   false,
		`true`:    true,
		`0`:       false,
		`3`:       true,
		`[]`:      false,
		`{"a":1}`: true,
	}
	for raw, want := range cases {
		_, got := reportedError([]byte(raw))
		assert.Equal(t, want, got, raw)
	}
	_, got := reportedError(nil)
	assert.False(t, got)
}
