package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("x-goog-api-key"))

		var req GenerateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Contents, 1) {
			assert.Equal(t, "describe it", req.Contents[0].Parts[0].Text)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A lovely "},{"text":"dress. "}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "key-123", "test-model", time.Second, zap.NewNop())

	text, err := c.GenerateText(context.Background(), "describe it")

	require.NoError(t, err)
	assert.Equal(t, "A lovely dress.", text)
}

func TestGenerateTextErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"api error", http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`, "quota exceeded"},
		{"plain error", http.StatusBadGateway, `upstream down`, "502"},
		{"malformed body", http.StatusOK, `{not json`, ""},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, ErrEmptyResponse.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "key", "m", time.Second, zap.NewNop())
			_, err := c.GenerateText(context.Background(), "p")

			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGenerateTextWithoutKey(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", "m", time.Second, zap.NewNop())

	_, err := c.GenerateText(context.Background(), "p")

	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
