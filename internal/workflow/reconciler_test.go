package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/vexo-checker/internal/subscription"
)

func panel(t *testing.T, status int, body string, posts *int) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*posts++
		assert.Equal(t, "/api/update_ip", r.URL.Path)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "abc123", req["token"])
		assert.Equal(t, "5.6.7.8", req["ip"])

		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		lastIP   string
		publicIP string
		found    bool
		status   int
		body     string
		want     IPStatus
		wantPost int
		wantLast string
		style    Style
	}{
		{"no change", "1.2.3.4", "1.2.3.4", true, 0, "", IPStatus{Kind: IPNoChange, NewIP: "1.2.3.4"}, 0, "1.2.3.4", StyleSuccess},
		{"changed", "1.2.3.4", "5.6.7.8", true, 200, `{"success":true}`, IPStatus{Kind: IPChanged, OldIP: "1.2.3.4", NewIP: "5.6.7.8"}, 1, "5.6.7.8", StyleSuccess},
		{"changed from nothing", "", "5.6.7.8", true, 200, `{}`, IPStatus{Kind: IPChanged, NewIP: "5.6.7.8"}, 1, "5.6.7.8", StyleSuccess},
		{"conflict", "1.2.3.4", "5.6.7.8", true, 409, `{"error_code":"IP_CONFLICT"}`, IPStatus{Kind: IPConflict}, 1, "1.2.3.4", StyleDanger},
		{"update failed", "1.2.3.4", "5.6.7.8", true, 500, `oops`, IPStatus{Kind: IPUpdateFailed}, 1, "1.2.3.4", StyleWarning},
		{"not found", "1.2.3.4", "", false, 0, "", IPStatus{Kind: IPNotFound}, 0, "1.2.3.4", StyleWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := 0
			base := panel(t, tt.status, tt.body, &posts)
			fetched := &subscription.FetchResult{
				Record: &subscription.Record{LastIP: tt.lastIP},
				APIURL: base + "/api/sub/abc123",
			}

			r := NewReconciler(subscription.NewUpdater(nil))
			got := r.Reconcile(context.Background(), base+"/sub/abc123", fetched, tt.publicIP, tt.found)

			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			assert.Equal(t, tt.style, got.Style())
			assert.Equal(t, tt.wantPost, posts)
			assert.Equal(t, tt.wantLast, fetched.Record.LastIP)
		})
	}
}

func TestIPStatusParams(t *testing.T) {
	changed := &IPStatus{Kind: IPChanged, NewIP: "5.6.7.8"}
	assert.Equal(t, "ip_changed_from_to", changed.MessageKey())
	assert.Equal(t, []any{"N/A", "5.6.7.8"}, changed.Params())

	same := &IPStatus{Kind: IPNoChange, NewIP: "1.2.3.4"}
	assert.Equal(t, []any{"1.2.3.4"}, same.Params())

	assert.Equal(t, "ip_not_found", (&IPStatus{Kind: IPNotFound}).MessageKey())
	assert.Nil(t, (&IPStatus{Kind: IPConflict}).Params())
}
