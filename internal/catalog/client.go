// Package catalog supplies candidate exercises, either from a remote
// exercise API or from a built-in fallback table when the API is
// unreachable or unconfigured.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/claude/planfit/internal/models"
)

const (
	// DefaultURL is the API Ninjas exercise endpoint.
	DefaultURL = "https://api.api-ninjas.com/v1/exercises"
	// DefaultTimeout bounds a single catalog request.
	DefaultTimeout = 10 * time.Second
	// DefaultCacheTTL is how long remote results are memoized per muscle group.
	DefaultCacheTTL = time.Hour
)

// Client fetches exercises from a remote catalog with a per-muscle-group
// TTL cache. All failure modes degrade to the built-in fallback table; Fetch
// never returns an error.
type Client struct {
	baseURL    string
	apiKey     string
	ttl        time.Duration
	httpClient *http.Client
	log        *slog.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry

	now func() time.Time
}

type cacheEntry struct {
	records []models.ExerciseRecord
	expires time.Time
}

// New creates a catalog client. An empty apiKey disables the remote path
// entirely; Fetch then serves the fallback table.
func New(baseURL, apiKey string, timeout, ttl time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		ttl:        ttl,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// Fetch returns exercises for the given muscle group (all exercises when
// muscle is empty). Remote results are cached per muscle group for the
// configured TTL; any remote failure is logged and converted to the fallback
// table filtered by muscle.
func (c *Client) Fetch(ctx context.Context, muscle string) []models.ExerciseRecord {
	muscle = strings.ToLower(strings.TrimSpace(muscle))

	if c.apiKey == "" {
		return FallbackExercises(muscle)
	}

	if cached, ok := c.cached(muscle); ok {
		return cached
	}

	records, err := c.fetchRemote(ctx, muscle)
	if err != nil {
		c.log.Warn("catalog fetch failed, using fallback", "muscle", muscle, "error", err)
		return FallbackExercises(muscle)
	}

	c.store(muscle, records)
	return records
}

// FetchFocusAreas fetches exercises for each focus area and merges the
// results into a single deduplicated list, preserving first-seen order.
func (c *Client) FetchFocusAreas(ctx context.Context, areas []string) []models.ExerciseRecord {
	lists := make([][]models.ExerciseRecord, 0, len(areas))
	for _, area := range areas {
		lists = append(lists, c.Fetch(ctx, area))
	}
	return Merge(lists...)
}

func (c *Client) cached(muscle string) ([]models.ExerciseRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[muscle]
	if !ok || c.now().After(entry.expires) {
		return nil, false
	}
	return entry.records, true
}

func (c *Client) store(muscle string, records []models.ExerciseRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[muscle] = cacheEntry{records: records, expires: c.now().Add(c.ttl)}
}

func (c *Client) fetchRemote(ctx context.Context, muscle string) ([]models.ExerciseRecord, error) {
	u := c.baseURL
	if muscle != "" {
		params := url.Values{}
		params.Set("muscle", muscle)
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: returned %d: %s", resp.StatusCode, body)
	}

	var records []models.ExerciseRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("catalog: decode exercises: %w", err)
	}
	return records, nil
}
