package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestChatSuccess verifies the request wire format (auth header, model,
// sampling parameters) and that the first choice's content is returned.
func TestChatSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", got)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["model"] != "test-model" {
			t.Errorf("model = %v, want test-model", req["model"])
		}
		if req["temperature"] != 0.7 {
			t.Errorf("temperature = %v, want 0.7", req["temperature"])
		}
		if req["max_tokens"] != float64(2048) {
			t.Errorf("max_tokens = %v, want 2048", req["max_tokens"])
		}

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "test-model", 0)

	got, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 0.7, 2048)
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if got != "hello" {
		t.Errorf("content = %q, want hello", got)
	}
}

// TestChatAPIError verifies the error field in a response body surfaces as
// an error.
func TestChatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "bad-key", "", 0)

	if _, err := c.Chat(context.Background(), nil, 0.7, 100); err == nil {
		t.Error("expected error for API error response")
	}
}

// TestChatEmptyChoices verifies a response with no choices is an error.
func TestChatEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "key", "", 0)

	if _, err := c.Chat(context.Background(), nil, 0.7, 100); err == nil {
		t.Error("expected error for empty choices")
	}
}

// TestChatTransportError verifies an unreachable endpoint is an error.
func TestChatTransportError(t *testing.T) {
	c := New("http://127.0.0.1:0", "key", "", 0)

	if _, err := c.Chat(context.Background(), nil, 0.7, 100); err == nil {
		t.Error("expected transport error")
	}
}

// TestDefaults verifies empty constructor arguments pick up package defaults.
func TestDefaults(t *testing.T) {
	c := New("", "key", "", 0)
	if c.url != DefaultURL {
		t.Errorf("url = %q, want %q", c.url, DefaultURL)
	}
	if c.model != DefaultModel {
		t.Errorf("model = %q, want %q", c.model, DefaultModel)
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, DefaultTimeout)
	}
}
