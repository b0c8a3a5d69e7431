package service_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "squad-stats-backend/internal/errors"
	"squad-stats-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiServer(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGeminiClient_GenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}

	server := newGeminiServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "Start "}, {"text": "Alex."}]},
			"finishReason": "STOP"
		}]
	}`, func(r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
	})

	client := service.NewGeminiClient(service.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-flash-latest",
		BaseURL: server.URL + "/",
		Timeout: 5 * time.Second,
	})

	text, err := client.GenerateText(context.Background(), "Who should start?")
	require.NoError(t, err)
	assert.Equal(t, "Start Alex.", text)
	assert.Equal(t, "/v1beta/models/gemini-flash-latest:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	contents := gotBody["contents"].([]interface{})
	require.Len(t, contents, 1)
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	assert.Equal(t, "Who should start?", parts[0].(map[string]interface{})["text"])
}

func TestGeminiClient_Failures(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"message":"internal"}}`},
		{name: "quota exceeded", status: http.StatusTooManyRequests, body: `{"error":{"code":429}}`},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`},
		{name: "empty text", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[]},"finishReason":"SAFETY"}]}`},
		{name: "malformed json", status: http.StatusOK, body: `not json`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newGeminiServer(t, tc.status, tc.body, nil)
			client := service.NewGeminiClient(service.GeminiConfig{APIKey: "k", Model: "m", BaseURL: server.URL})

			text, err := client.GenerateText(context.Background(), "question")
			assert.Empty(t, text)
			assert.True(t, apperrors.IsUpstream(err), "got %v", err)
		})
	}
}

func TestGeminiClient_Unreachable(t *testing.T) {
	server := newGeminiServer(t, http.StatusOK, `{}`, nil)
	url := server.URL
	server.Close()

	client := service.NewGeminiClient(service.GeminiConfig{APIKey: "k", Model: "m", BaseURL: url})
	_, err := client.GenerateText(context.Background(), "question")
	assert.True(t, apperrors.IsUpstream(err))
}

func TestGeminiClient_NotConfigured(t *testing.T) {
	client := service.NewGeminiClient(service.GeminiConfig{Model: "m", BaseURL: "http://127.0.0.1:1"})

	_, err := client.GenerateText(context.Background(), "question")
	assert.ErrorIs(t, err, apperrors.ErrAIProviderNotConfigured)
}

func TestGeminiClient_EmptyPrompt(t *testing.T) {
	client := service.NewGeminiClient(service.GeminiConfig{APIKey: "k", Model: "m", BaseURL: "http://127.0.0.1:1"})

	_, err := client.GenerateText(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrEmptyPrompt)
}
