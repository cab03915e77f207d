package peco

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient returns a Client pointed entirely at a local test server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewWithHTTPClient(server.Client())
	c.currentStateURL = server.URL + "/currentState"
	c.reportURLFormat = server.URL + "/%s"
	c.alertsURLFormat = server.URL + "/alerts/%s"
	c.meterQueryURL = server.URL + "/query"
	c.meterPrecheckURL = server.URL + "/precheck"
	c.meterPingURL = server.URL + "/ping"
	return c
}

// fixtureHandler serves the recorded current-state and report payloads and
// counts how many requests were made.
func fixtureHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if strings.Contains(r.URL.Path, "currentState") {
			http.ServeFile(w, r, "../testdata/fixtures/current_state.json")
			return
		}
		http.ServeFile(w, r, "../testdata/fixtures/report.json")
	})
}

func TestGetJSON_ServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storm center is down", http.StatusInternalServerError)
	}))

	_, err := c.GetOutageTotals(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if fetchErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", fetchErr.StatusCode)
	}
}

func TestGetJSON_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewWithHTTPClient(&http.Client{})
	c.currentStateURL = server.URL + "/currentState"
	server.Close()

	_, err := c.GetOutageTotals(context.Background())
	if err == nil {
		t.Fatal("expected error for refused connection, got nil")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if fetchErr.Unwrap() == nil {
		t.Error("expected FetchError to carry the underlying cause")
	}
}

func TestGetJSON_MalformedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"interval_generation_data": "2026`)) // truncated
	}))

	_, err := c.GetOutageTotals(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}

func TestGetJSON_ContextCanceled(t *testing.T) {
	calls := 0
	c := newTestClient(t, fixtureHandler(&calls))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetOutageTotals(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context, got nil")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
}
