package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/guestportal/internal/pkg/circuitbreaker"
	"github.com/piresc/guestportal/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(maxRetries int) *EnhancedClient {
	rc := retry.DefaultConfig()
	rc.MaxRetries = maxRetries
	rc.BaseDelay = time.Millisecond
	rc.Jitter = false
	return NewEnhancedClient(&http.Client{}, retry.New(rc), circuitbreaker.NewManager(circuitbreaker.DefaultConfig("")))
}

func TestPostJSON_SendsBodyAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "JSESSIONID=abc", r.Header.Get("Cookie"))
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "aa:bb:cc:dd:ee:ff", body["mac"])
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "next"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("authorized"))
	}))
	defer server.Close()

	header := http.Header{}
	header.Set("Cookie", "JSESSIONID=abc")
	resp, err := newTestClient(0).PostJSON(context.Background(), server.URL, map[string]string{"mac": "aa:bb:cc:dd:ee:ff"}, header)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "authorized", string(resp.Body))
	require.Len(t, resp.Cookies, 1)
	assert.Equal(t, "next", resp.Cookies[0].Value)
}

func TestPostJSON_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp, err := newTestClient(1).PostJSON(context.Background(), server.URL, map[string]string{}, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestPostJSON_ClientErrorIsReturnedNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	resp, err := newTestClient(2).PostJSON(context.Background(), server.URL, map[string]string{}, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPostJSON_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestClient(0).PostJSON(ctx, server.URL, map[string]string{}, nil)

	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}
