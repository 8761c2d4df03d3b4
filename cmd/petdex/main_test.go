package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	main "github.com/fwojciec/petdex/cmd/petdex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main wired to a temp database and the given fake
// provider.
func newTestMain(t *testing.T, providerURL string) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = t.TempDir() + "/petdex.db"
	m.APIKey = "test-key"
	m.BaseURL = providerURL
	return m
}

// fakeProvider serves canned provider responses per endpoint path suffix.
func fakeProvider(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			t.Errorf("unexpected provider request: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestFind(t *testing.T) {
	t.Parallel()

	server := fakeProvider(t, map[string]string{
		"/place/nearbysearch/json": `{
			"status": "OK",
			"results": [{
				"place_id": "pid-1",
				"name": "Clinica Vet Centro",
				"vicinity": "Rua Augusta, 100",
				"rating": 4.6,
				"user_ratings_total": 210,
				"geometry": {"location": {"lat": -23.5495, "lng": -46.6333}}
			}]
		}`,
	})
	defer server.Close()

	m := newTestMain(t, server.URL)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"find", "--lat", "-23.5505", "--lng", "-46.6333", "--category", "vet",
	}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Clinica Vet Centro")
	assert.Contains(t, out, "Rua Augusta, 100")
	assert.Contains(t, out, "km")
	assert.Contains(t, out, "Showing 1 of 1 results")
}

func TestFind_ByAddress(t *testing.T) {
	t.Parallel()

	server := fakeProvider(t, map[string]string{
		"/geocode/json": `{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": -23.5505, "lng": -46.6333}}}]
		}`,
		"/place/nearbysearch/json": `{
			"status": "OK",
			"results": [{"place_id": "pid-1", "name": "Pet Shop Central"}]
		}`,
	})
	defer server.Close()

	m := newTestMain(t, server.URL)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"find", "--address", "Av. Paulista, São Paulo", "--category", "store",
	}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Pet Shop Central")
}

func TestFind_RequiresOrigin(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, "http://localhost:0")
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"find"}, &stdout, &stderr)
	require.Error(t, err)
}

func TestProfile(t *testing.T) {
	t.Parallel()

	server := fakeProvider(t, map[string]string{
		"/place/details/json": `{
			"status": "OK",
			"result": {
				"place_id": "pid-1",
				"name": "Clinica Vet Centro",
				"formatted_address": "Rua Augusta, 100",
				"formatted_phone_number": "(11) 5555-0100",
				"rating": 4.6,
				"user_ratings_total": 210,
				"reviews": [{"author_name": "Ana", "rating": 5, "text": "Excellent care."}]
			}
		}`,
	})
	defer server.Close()

	m := newTestMain(t, server.URL)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"profile", "pid-1"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Clinica Vet Centro")
	assert.Contains(t, out, "(11) 5555-0100")
	assert.Contains(t, out, "Ana")
}

func TestRoute(t *testing.T) {
	t.Parallel()

	server := fakeProvider(t, map[string]string{
		"/directions/json": `{
			"status": "OK",
			"routes": [{
				"summary": "Av. Paulista",
				"overview_polyline": {"points": "abc"},
				"legs": [{"distance": {"value": 2000}, "duration": {"value": 420}}]
			}]
		}`,
	})
	defer server.Close()

	m := newTestMain(t, server.URL)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"route", "--from", "-23.5505,-46.6333", "--to", "-23.5613,-46.6565",
	}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "via Av. Paulista")
	assert.Contains(t, out, "2.00 km")
	assert.Contains(t, out, "7m0s")
}

func TestPrefsDark(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = t.TempDir() + "/petdex.db"
	var stdout, stderr bytes.Buffer

	// Default is off.
	require.NoError(t, m.Run(context.Background(), []string{"prefs", "dark"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "dark mode off")

	stdout.Reset()
	require.NoError(t, m.Run(context.Background(), []string{"prefs", "dark", "on"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "dark mode on")

	stdout.Reset()
	require.NoError(t, m.Run(context.Background(), []string{"prefs", "dark"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "dark mode on")
}

func TestNoCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = t.TempDir() + "/petdex.db"
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
