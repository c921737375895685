package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coursegen/backend/internal/cache"
	"github.com/coursegen/backend/internal/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 0,
		"model":   "test-model",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
	return string(body)
}

// setupTestClient creates a client pointed at a fake completion server and counts its requests
func setupTestClient(t *testing.T, status int, body string) (*client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	responses, err := cache.NewMemory(10)
	require.NoError(t, err)

	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1/",
		Model:   "test-model",
		Timeout: time.Second,
	}, responses, logger)

	return c, &calls
}

func TestNewClient_Defaults(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	c := NewClient(Config{}, nil, logger)

	assert.False(t, c.Configured())
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, DefaultTimeout, c.timeout)

	_, err := c.Complete(context.Background(), "hello", Options{})
	assert.True(t, clients.IsKind(err, clients.KindNotConfigured))
}

func TestClient_Complete(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expected      string
		expectedKind  clients.Kind
		expectedError bool
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			body:     completionBody("  - 00:00 Introduction\n"),
			expected: "- 00:00 Introduction",
		},
		{
			name:          "empty completion",
			status:        http.StatusOK,
			body:          completionBody("   "),
			expectedError: true,
			expectedKind:  clients.KindDecode,
		},
		{
			name:          "server error",
			status:        http.StatusInternalServerError,
			body:          `{"error":{"message":"boom","type":"server_error"}}`,
			expectedError: true,
			expectedKind:  clients.KindUpstream,
		},
		{
			name:          "unknown model",
			status:        http.StatusNotFound,
			body:          `{"error":{"message":"model not found","type":"invalid_request_error"}}`,
			expectedError: true,
			expectedKind:  clients.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := setupTestClient(t, tt.status, tt.body)

			result, err := c.Complete(context.Background(), "make chapters", Options{Temperature: 0.5})

			if tt.expectedError {
				assert.Error(t, err)
				assert.True(t, clients.IsKind(err, tt.expectedKind), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClient_Complete_UsesCache(t *testing.T) {
	c, calls := setupTestClient(t, http.StatusOK, completionBody("cached answer"))
	ctx := context.Background()

	first, err := c.Complete(ctx, "same prompt", Options{})
	require.NoError(t, err)
	second, err := c.Complete(ctx, "same prompt", Options{})
	require.NoError(t, err)
	_, err = c.Complete(ctx, "other prompt", Options{})
	require.NoError(t, err)

	assert.Equal(t, "cached answer", first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(2), calls.Load())
}
