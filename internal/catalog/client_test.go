package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/planfit/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFetchRemote verifies a successful remote fetch: API key header, muscle
// query parameter, decoded records, and that the result is cached.
func TestFetchRemote(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("X-Api-Key = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("muscle"); got != "chest" {
			t.Errorf("muscle = %q, want chest", got)
		}
		_ = json.NewEncoder(w).Encode([]models.ExerciseRecord{
			{Name: "Bench Press", Muscle: "chest", Difficulty: "intermediate"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 0, 0, testLogger())

	records := c.Fetch(context.Background(), "Chest")
	if len(records) != 1 || records[0].Name != "Bench Press" {
		t.Fatalf("records = %v, want [Bench Press]", records)
	}

	// Second fetch is served from cache
	c.Fetch(context.Background(), "chest")
	if calls != 1 {
		t.Errorf("remote calls = %d, want 1 (cached)", calls)
	}
}

// TestFetchCacheExpiry verifies an expired cache entry triggers a new remote
// call.
func TestFetchCacheExpiry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode([]models.ExerciseRecord{{Name: "Bench Press"}})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 0, time.Hour, testLogger())
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Fetch(context.Background(), "chest")
	now = now.Add(2 * time.Hour)
	c.Fetch(context.Background(), "chest")

	if calls != 2 {
		t.Errorf("remote calls = %d, want 2 (expired entry refetched)", calls)
	}
}

// TestFetchNon200FallsBack verifies a non-200 response degrades to the
// built-in table filtered by muscle.
func TestFetchNon200FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 0, 0, testLogger())

	records := c.Fetch(context.Background(), "chest")
	if len(records) != 1 || records[0].Name != "Push-ups" {
		t.Errorf("records = %v, want the fallback chest exercise", records)
	}
}

// TestFetchTransportErrorFallsBack verifies an unreachable catalog degrades
// to the built-in table.
func TestFetchTransportErrorFallsBack(t *testing.T) {
	c := New("http://127.0.0.1:0", "test-key", time.Second, 0, testLogger())

	records := c.Fetch(context.Background(), "")
	if len(records) != 10 {
		t.Errorf("len = %d, want 10 (full fallback table)", len(records))
	}
}

// TestFetchBadJSONFallsBack verifies an undecodable body degrades to the
// built-in table.
func TestFetchBadJSONFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 0, 0, testLogger())

	records := c.Fetch(context.Background(), "lats")
	if len(records) != 1 || records[0].Name != "Pull-ups" {
		t.Errorf("records = %v, want the fallback lats exercise", records)
	}
}

// TestFetchNoAPIKey verifies the remote path is skipped entirely without a
// credential.
func TestFetchNoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote catalog should not be called without an API key")
	}))
	defer srv.Close()

	c := New(srv.URL, "", 0, 0, testLogger())

	records := c.Fetch(context.Background(), "")
	if len(records) != 10 {
		t.Errorf("len = %d, want 10", len(records))
	}
}

// TestFetchFocusAreasMerges verifies the per-area fetch loop deduplicates
// overlapping results.
func TestFetchFocusAreasMerges(t *testing.T) {
	c := New("", "", 0, 0, testLogger())

	// Both areas resolve against the fallback table; full_body appears in
	// Burpees only, abdominals in Plank and Mountain Climbers.
	records := c.FetchFocusAreas(context.Background(), []string{"abdominals", "abdominals", "full_body"})
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	want := []string{"Plank", "Mountain Climbers", "Burpees"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("index %d = %q, want %q", i, records[i].Name, name)
		}
	}
}
