package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantTimeout time.Duration
	}{
		{
			name:        "Valid configuration",
			config:      Config{BaseURL: "https://api.example.com", Timeout: 30 * time.Second},
			wantTimeout: 30 * time.Second,
		},
		{
			name:        "Default timeout",
			config:      Config{BaseURL: "http://localhost:8080"},
			wantTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			assert.NotNil(t, client)
			assert.Equal(t, tt.config.BaseURL, client.baseURL)
			assert.Equal(t, tt.wantTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_URL(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://movecar.example/"})

	assert.Equal(t, "https://movecar.example/api/notify", client.url("/api/notify"))
	assert.Equal(t, "https://movecar.example/api/notify", client.url("api/notify"))
	assert.Equal(t, "https://api.day.app/key/x", client.url("https://api.day.app/key/x"))
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/test-endpoint", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "success"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 30 * time.Second})

	resp, err := client.Get(context.Background(), "/test-endpoint")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"message": "success"}`, string(body))
}

func TestClient_PostJSON(t *testing.T) {
	payload := map[string]interface{}{"license": "京A12345"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, payload, received)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true, "license": "京A12345"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	var result struct {
		Success bool   `json:"success"`
		License string `json:"license"`
	}
	err := client.PostJSON(context.Background(), "/api/verify-license", payload, &result)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "京A12345", result.License)
}

func TestClient_GetJSON_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "No location"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	err := client.GetJSON(context.Background(), "/api/get-location?plate=X", nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.JSONEq(t, `{"error": "No location"}`, string(httpErr.Body))
}

func TestClient_PostJSON_ErrorKeepsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	err := client.PostJSON(context.Background(), "/api/notify", map[string]string{"license": "A"}, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Equal(t, "42", httpErr.Header.Get("Retry-After"))
}

func TestClient_PostJSON_NilResultDiscardsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	assert.NoError(t, client.PostJSON(context.Background(), "/api/notify", nil, nil))
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond})

	_, err := client.Get(context.Background(), "/slow")
	assert.Error(t, err)
}
