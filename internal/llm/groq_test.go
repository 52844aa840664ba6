package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *llm.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Model = "llama-3.3-70b-versatile"
	cfg.BaseURL = srv.URL

	return llm.New(cfg, "test-key")
}

func TestChat(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "llama-3.3-70b-versatile",
			"choices": [{"message": {"role": "assistant", "content": "  {\"health_score\": 8}  "}}]
		}`))
	})

	reply, err := client.Chat(context.Background(), "analyze this", 0.3)
	require.NoError(t, err)

	assert.Equal(t, `{"health_score": 8}`, reply, "Reply text is trimmed")
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "llama-3.3-70b-versatile", gotBody["model"])
	assert.Equal(t, false, gotBody["stream"])
	assert.InDelta(t, 0.3, gotBody["temperature"], 0.001)

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "analyze this", msg["content"])
}

func TestChatNoAPIKey(t *testing.T) {
	client := llm.New(llm.DefaultConfig(), "")

	assert.False(t, client.Configured())

	_, err := client.Chat(context.Background(), "prompt", 0.3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAnalysisUnavailable))
}

func TestChatAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Invalid API Key"}}`))
	})

	_, err := client.Chat(context.Background(), "prompt", 0.3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAnalysisUnavailable))
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestChatMalformedReply(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Chat(context.Background(), "prompt", 0.3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAnalysisParse))
}

func TestChatEmptyChoices(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"model": "m", "choices": []}`))
	})

	_, err := client.Chat(context.Background(), "prompt", 0.3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAnalysisParse))
}

func TestChatTransportError(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1"

	_, err := llm.New(cfg, "key").Chat(context.Background(), "prompt", 0.3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAnalysisUnavailable))
}
