package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"person_search/config"
	"person_search/models"
)

func newSerpConfig(endpoint, key string) *config.Config {
	cfg := &config.Config{}
	cfg.SerpAPI.APIKey = key
	cfg.SerpAPI.Endpoint = endpoint
	cfg.SerpAPI.Engine = "google"
	return cfg
}

func TestSerpAPISearchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "Jane Doe teacher", r.URL.Query().Get("q"))
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		require.Equal(t, "google", r.URL.Query().Get("engine"))

		payload := map[string]any{
			"organic_results": []map[string]string{
				{"link": "http://x", "title": "Jane Doe - University X", "snippet": "Jane attended University X"},
				{"title": "No link", "snippet": "kept anyway"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	defer server.Close()

	client := NewSerpAPIClient(newSerpConfig(server.URL, "test-key"), server.Client())
	results, err := client.Search(context.Background(), "Jane Doe teacher")
	require.NoError(t, err)
	require.Equal(t, []models.SearchResult{
		{Title: "Jane Doe - University X", Snippet: "Jane attended University X", Link: "http://x"},
		{Title: "No link", Snippet: "kept anyway"},
	}, results)
}

func TestSerpAPIMissingOrganicResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Google hasn't returned any results for this query."}`))
	}))
	defer server.Close()

	client := NewSerpAPIClient(newSerpConfig(server.URL, "k"), server.Client())
	results, err := client.Search(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, results)
	require.Empty(t, results)
}

func TestSerpAPIHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer server.Close()

	client := NewSerpAPIClient(newSerpConfig(server.URL, "bad"), server.Client())
	results, err := client.Search(context.Background(), "q")
	require.Error(t, err)
	require.Nil(t, results)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	require.Contains(t, err.Error(), "Invalid API key")
}

func TestSerpAPIMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer server.Close()

	client := NewSerpAPIClient(newSerpConfig(server.URL, "k"), server.Client())
	_, err := client.Search(context.Background(), "q")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unmarshal serpapi response")
}

func TestSerpAPIRequiresKey(t *testing.T) {
	client := NewSerpAPIClient(newSerpConfig("http://127.0.0.1:0", " "), nil)
	_, err := client.Search(context.Background(), "q")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingAPIKey))
}
