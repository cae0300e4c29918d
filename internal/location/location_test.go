package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zones = []string{"Arts District", "Downtown", "Midtown", "Waterfront"}

func TestStaticProvider(t *testing.T) {
	zone, err := StaticProvider{Zone: "  Midtown "}.CurrentZone(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Midtown", zone)

	_, err = StaticProvider{}.CurrentZone(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = StaticProvider{Zone: "Midtown"}.CurrentZone(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSnap(t *testing.T) {
	assert.Equal(t, "Arts District", Snap("arts district ", zones))
	assert.Equal(t, "Hollywood", Snap(" Hollywood", zones))
}

func TestHTTPProvider_SnapsCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"city":"downtown","region":"California"}`))
	}))
	defer srv.Close()

	zone, err := NewHTTPProvider(srv.URL, zones).CurrentZone(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Downtown", zone)
}

func TestHTTPProvider_PrefersDistrict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"district":"Waterfront","city":"Los Angeles"}`))
	}))
	defer srv.Close()

	zone, err := NewHTTPProvider(srv.URL, zones).CurrentZone(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Waterfront", zone)
}

func TestHTTPProvider_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "bad json", status: http.StatusOK, body: `{`},
		{name: "api error", status: http.StatusOK, body: `{"error":true,"reason":"RateLimited"}`},
		{name: "no place", status: http.StatusOK, body: `{}`, wantErr: ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPProvider(srv.URL, zones).CurrentZone(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTracker_LatestRequestWins(t *testing.T) {
	var tr Tracker
	first := tr.Begin(4)
	second := tr.Begin(4)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, tr.Pending())

	assert.False(t, tr.Settle(first, 4), "superseded request is discarded")
	assert.True(t, tr.Settle(second, 4))
	assert.False(t, tr.Pending())
	assert.False(t, tr.Settle(second, 4), "a request settles once")
}

func TestTracker_ZoneWrittenMeanwhile(t *testing.T) {
	var tr Tracker
	req := tr.Begin(7)

	assert.False(t, tr.Settle(req, 8))
	assert.False(t, tr.Pending())
}

func TestTracker_Cancel(t *testing.T) {
	var tr Tracker
	req := tr.Begin(1)
	tr.Cancel()

	assert.False(t, tr.Pending())
	assert.False(t, tr.Settle(req, 1))
}
