package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		URL:       server.URL,
		Timeout:   2 * time.Second,
		MaxFixAge: 5 * time.Minute,
	})
	require.NoError(t, err)
	return client
}

func TestClient_Current_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","lat":21.3891,"lon":-157.9298}`))
	})

	coords, err := client.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 21.3891, coords.Latitude)
	assert.Equal(t, -157.9298, coords.Longitude)
}

func TestClient_Current_UsesCachedFix(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"status":"success","lat":21.3,"lon":-157.9}`))
	})

	_, err := client.Current(context.Background())
	require.NoError(t, err)
	_, err = client.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestClient_Current_PermissionDenied(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Current(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestClient_Current_ProviderFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
	})

	_, err := client.Current(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}
