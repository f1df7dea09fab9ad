package requester

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/piresc/movecar/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL, lang string) *Client {
	client := NewClient(baseURL, time.Second, lang)
	client.retrier = retry.New(retryConfig(retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, Multiplier: 1}))
	return client
}

func TestClient_Notify(t *testing.T) {
	var got NotifyInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notify", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "en")
	err := client.Notify(context.Background(), NotifyInput{
		Plate:    "京A12345",
		Message:  "hi",
		Location: models.NewCoordinates(39.9, 116.4),
		Delayed:  false,
	})
	require.NoError(t, err)

	assert.Equal(t, "京A12345", got.Plate)
	assert.Equal(t, "hi", got.Message)
	require.True(t, got.Location.Complete())
	assert.Equal(t, 116.4, *got.Location.Lng)
}

func TestClient_NotifyCooldown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"success":false,"error":"Please wait 42 seconds before trying again","code":429}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL, "").Notify(context.Background(), NotifyInput{Plate: "A"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, 42*time.Second, apiErr.RetryAfter)
	assert.Equal(t, "Please wait 42 seconds before trying again", apiErr.Message)
}

func TestClient_CheckStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/check-status", r.URL.Path)
		assert.Equal(t, "京A12345", r.URL.Query().Get("plate"))
		_, _ = w.Write([]byte(`{"status":"confirmed","ownerLocation":{"lat":1,"lng":2,"amapUrl":"amap","appleUrl":"apple","timestamp":1700000000000},"allowCall":true}`))
	}))
	defer server.Close()

	view, err := newTestClient(server.URL, "").CheckStatus(context.Background(), "京A12345")
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, view.Status)
	assert.True(t, view.AllowCall)
	require.NotNil(t, view.OwnerLocation)
	assert.Equal(t, "amap", view.OwnerLocation.AmapURL)
	assert.Equal(t, int64(1700000000000), view.OwnerLocation.ConfirmedAt)
}

func TestClient_VerifyLicense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["license"] == "A" {
			_, _ = w.Write([]byte(`{"success":true,"license":"A","phone":"138"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":false,"message":"not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	found, err := client.VerifyLicense(context.Background(), "A")
	require.NoError(t, err)
	assert.True(t, found.Success)
	assert.Equal(t, "138", found.Phone)

	missing, err := client.VerifyLicense(context.Background(), "B")
	require.NoError(t, err)
	assert.False(t, missing.Success)
	assert.Equal(t, "not found", missing.Message)
}

func TestClient_ServerError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "").CheckStatus(context.Background(), "A")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "movecar api: 500 Internal Server Error", apiErr.Error())
	assert.Equal(t, 3, calls)
}

func TestClient_CheckStatusRetriesTransientFailure(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"waiting","ownerLocation":null,"allowCall":false}`))
	}))
	defer server.Close()

	view, err := newTestClient(server.URL, "").CheckStatus(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, view.Status)
	assert.Equal(t, 2, calls)
}

func TestClient_NotifyIsNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"delivery failed"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL, "").Notify(context.Background(), NotifyInput{Plate: "A"})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
