package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/guestportal/internal/pkg/circuitbreaker"
	httppkg "github.com/piresc/guestportal/internal/pkg/http"
	"github.com/piresc/guestportal/internal/pkg/retry"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noRetryClient() *httppkg.EnhancedClient {
	return httppkg.NewEnhancedClient(&http.Client{},
		retry.New(retry.Config{MaxRetries: 0}),
		circuitbreaker.NewManager(circuitbreaker.DefaultConfig("")))
}

func liveDirectory(timeout time.Duration, now func() time.Time) *Directory {
	return NewDirectory(Options{TestMode: false, Timeout: timeout, Now: now}, noRetryClient(), nil)
}

func TestDirectory_TestModeMakesNoCalls(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	dir := NewDirectory(Options{TestMode: true}, nil, nil)

	for _, typ := range []Type{TypeRuckusSZ, TypeCambiumCnMaestro} {
		gw, err := dir.Resolve(Spec{ID: 1, Type: typ, BaseURL: srv.URL})
		require.NoError(t, err)

		res := gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", time.Hour)
		assert.True(t, res.OK)
		assert.Equal(t, "authorized(test)", res.Message)
		assert.Equal(t, int64(3600000), res.SessionMS)
		assert.True(t, gw.DisconnectMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", "admin"))
	}
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestDirectory_UnsupportedType(t *testing.T) {
	dir := NewDirectory(Options{TestMode: true}, nil, nil)
	_, err := dir.Resolve(Spec{ID: 1, Type: "meraki"})
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestDirectory_CachesBySpec(t *testing.T) {
	dir := liveDirectory(time.Second, nil)
	spec := Spec{ID: 1, Type: TypeRuckusSZ, BaseURL: "http://ruckus.local"}

	a, err := dir.Resolve(spec)
	require.NoError(t, err)
	b, err := dir.Resolve(spec)
	require.NoError(t, err)
	assert.Same(t, a, b)

	spec.APIKey = "rotated"
	c, err := dir.Resolve(spec)
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	spec.APISecret = "rotated-secret"
	d, err := dir.Resolve(spec)
	require.NoError(t, err)
	assert.NotSame(t, c, d)
}

func TestCambium_SecretRotationSignsWithNewSecret(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	var sigs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Sig string `json:"sig"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		sigs = append(sigs, body.Sig)
		w.Write([]byte("granted"))
	}))
	defer srv.Close()

	dir := liveDirectory(time.Second, func() time.Time { return fixed })
	spec := Spec{ID: 7, Type: TypeCambiumCnMaestro, BaseURL: srv.URL, APIKey: "key-1", APISecret: "old"}

	gw, err := dir.Resolve(spec)
	require.NoError(t, err)
	gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", time.Minute)

	spec.APISecret = "new"
	gw, err = dir.Resolve(spec)
	require.NoError(t, err)
	gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", time.Minute)

	message := fmt.Sprintf("aa:bb:cc:dd:ee:ff:%d", fixed.Unix())
	require.Len(t, sigs, 2)
	assert.Equal(t, utils.HMACHex("old", message), sigs[0])
	assert.Equal(t, utils.HMACHex("new", message), sigs[1])
}

func TestRuckus_LoginAndReloginOn401(t *testing.T) {
	var logins, authorizes int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/public/v6_1/session":
			n := atomic.AddInt32(&logins, 1)
			var body ruckusLogin
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin", body.Username)
			assert.Equal(t, "pw", body.Password)
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: fmt.Sprintf("s%d", n)})
			w.WriteHeader(http.StatusOK)
		case "/portal/authorize":
			n := atomic.AddInt32(&authorizes, 1)
			cookie, err := r.Cookie("JSESSIONID")
			if !assert.NoError(t, err) {
				return
			}
			// first session expires after the first call
			if n == 2 && cookie.Value == "s1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			var body ruckusAuthorize
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Guest", body.SSID)
			assert.Equal(t, int64(1800000), body.SessionMS)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	gw, err := liveDirectory(time.Second, nil).Resolve(Spec{
		ID: 9, Type: TypeRuckusSZ, BaseURL: srv.URL + "/", APIKey: "admin", APISecret: "pw",
	})
	require.NoError(t, err)

	res := gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", 30*time.Minute)
	assert.True(t, res.OK)
	assert.Equal(t, int32(1), atomic.LoadInt32(&logins))

	res = gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", 30*time.Minute)
	assert.True(t, res.OK, res.Message)
	assert.Equal(t, int32(2), atomic.LoadInt32(&logins))
	assert.Equal(t, int32(3), atomic.LoadInt32(&authorizes))
}

func TestRuckus_LoginWithoutCookieFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gw, err := liveDirectory(time.Second, nil).Resolve(Spec{ID: 2, Type: TypeRuckusSZ, BaseURL: srv.URL})
	require.NoError(t, err)

	res := gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", time.Minute)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "JSESSIONID")
	assert.False(t, gw.DisconnectMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", "x"))
}

func TestCambium_SignsRequests(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))

		var body cambiumRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "key-1", body.APIKey)
		assert.Equal(t, fixed.Unix(), body.TS)
		assert.Equal(t, utils.HMACHex("secret-1", "aa:bb:cc:dd:ee:ff:1700000000"), body.Sig)
		assert.Len(t, body.Sig, 64)

		switch r.URL.Path {
		case "/guest/authorize":
			assert.Equal(t, int64(60000), body.SessionMS)
			w.Write([]byte("granted"))
		case "/guest/coa":
			assert.Equal(t, "expired", body.Message)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	gw, err := liveDirectory(time.Second, func() time.Time { return fixed }).Resolve(Spec{
		ID: 3, Type: TypeCambiumCnMaestro, BaseURL: srv.URL, APIKey: "key-1", APISecret: "secret-1",
	})
	require.NoError(t, err)

	res := gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", time.Minute)
	assert.True(t, res.OK)
	assert.Equal(t, "granted", res.Message)
	assert.True(t, gw.DisconnectMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", "expired"))
}

func TestCambium_Non2xxIsNegative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("bad signature"))
	}))
	defer srv.Close()

	gw, err := liveDirectory(time.Second, nil).Resolve(Spec{ID: 4, Type: TypeCambiumCnMaestro, BaseURL: srv.URL})
	require.NoError(t, err)

	res := gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", time.Minute)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "403")
	assert.False(t, gw.DisconnectMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", ""))
}

func TestGateway_TimeoutIsContained(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	defer close(release)

	gw, err := liveDirectory(50*time.Millisecond, nil).Resolve(Spec{ID: 5, Type: TypeCambiumCnMaestro, BaseURL: srv.URL})
	require.NoError(t, err)

	start := time.Now()
	res := gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", time.Minute)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "timeout")
	assert.Less(t, time.Since(start), time.Second)
}

func TestGateway_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw, err := liveDirectory(time.Second, nil).Resolve(Spec{ID: 6, Type: TypeRuckusSZ, BaseURL: url})
	require.NoError(t, err)

	res := gw.AuthorizeMAC(context.Background(), "Guest", "aa:bb:cc:dd:ee:ff", time.Minute)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
}
