package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "the analysis"}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	c := NewOpenAIClient(srv.URL, "sk-test", "gpt-4o-mini")
	got, err := c.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	require.Equal(t, "the analysis", got)

	require.Equal(t, "/chat/completions", gotPath)
	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	require.Equal(t, "system", gotReq.Messages[0].Role)
	require.Equal(t, "user prompt", gotReq.Messages[1].Content)
	require.InDelta(t, 0.7, gotReq.Temperature, 1e-9)
	require.Equal(t, 1000, gotReq.MaxTokens)
}

func TestOpenAIClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	c := NewOpenAIClient(srv.URL, "bad", "gpt-4o-mini")
	_, err := c.Complete(context.Background(), "s", "u")
	require.Error(t, err)
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	t.Cleanup(srv.Close)

	c := NewOpenAIClient(srv.URL, "sk-test", "gpt-4o-mini")
	_, err := c.Complete(context.Background(), "s", "u")
	require.ErrorIs(t, err, ErrNoCompletion)
}
