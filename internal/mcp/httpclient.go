package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claude/planfit/internal/models"
	"github.com/claude/planfit/internal/storage"
)

// HTTPClient implements DataSource by calling the Planfit REST API. Used for
// remote MCP mode where the binary runs locally (stdio) but plans live on the
// server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey is
// sent as X-API-Key on mutating requests and may be empty.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, reqBody any) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

func (c *HTTPClient) ListExercises(ctx context.Context, muscle string) ([]models.ExerciseRecord, error) {
	params := url.Values{}
	if muscle != "" {
		params.Set("muscle", muscle)
	}

	body, err := c.do(ctx, http.MethodGet, "/api/v1/exercises", params, nil)
	if err != nil {
		return nil, err
	}

	var records []models.ExerciseRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return records, nil
}

func (c *HTTPClient) GeneratePlan(ctx context.Context, profile models.UserProfile) (*storage.PlanSnapshot, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plans", nil, profile)
	if err != nil {
		return nil, err
	}

	var snap storage.PlanSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan snapshot: %w", err)
	}
	return &snap, nil
}

func (c *HTTPClient) ListPlans(ctx context.Context, limit int) ([]storage.PlanSummary, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.do(ctx, http.MethodGet, "/api/v1/plans", params, nil)
	if err != nil {
		return nil, err
	}

	var summaries []storage.PlanSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan list: %w", err)
	}
	return summaries, nil
}

func (c *HTTPClient) GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanSnapshot, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/plans/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}

	var snap storage.PlanSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan snapshot: %w", err)
	}
	return &snap, nil
}

func (c *HTTPClient) LatestPlan(ctx context.Context) (*storage.PlanSnapshot, error) {
	summaries, err := c.ListPlans(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, storage.ErrNotFound
	}
	return c.GetPlan(ctx, summaries[0].ID)
}
