// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weathertools/openweather-mcp/internal/owm"
)

const (
	testKeyA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testKeyB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func newTestRegistry() *Registry {
	return NewRegistryWithFactory(func(credential string) *owm.Client {
		return owm.NewClient(credential)
	})
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(testKeyA)
	require.NoError(t, err)
	assert.Equal(t, testKeyA, s.Credential)
	assert.False(t, s.EstablishedAt.IsZero())

	_, err = NewSession("tooshort")
	assert.ErrorIs(t, err, ErrBadCredential)
}

func TestCredentialFromAuthorization(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer " + testKeyA, testKeyA, false},
		{"bearer with padding", "Bearer  " + testKeyA, testKeyA, false},
		{"missing header", "", "", true},
		{"short credential", "Bearer tooshort", "", true},
		{"basic superseded", "Basic dXNlcjpwYXNz", "", true},
		{"bare credential", testKeyA, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CredentialFromAuthorization(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadCredential)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_NoSession(t *testing.T) {
	r := newTestRegistry()
	_, err := r.Resolve(nil)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRegistry_ProcessSessionFallback(t *testing.T) {
	r := newTestRegistry()
	s, err := NewSession(testKeyA)
	require.NoError(t, err)
	r.SetProcessSession(s)

	c, err := r.Resolve(nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestRegistry_ExplicitSessionTakesPriority(t *testing.T) {
	r := newTestRegistry()
	proc, err := NewSession(testKeyA)
	require.NoError(t, err)
	r.SetProcessSession(proc)

	override, err := NewSession(testKeyB)
	require.NoError(t, err)

	viaProcess, err := r.Resolve(nil)
	require.NoError(t, err)
	viaExplicit, err := r.Resolve(override)
	require.NoError(t, err)

	// Distinct credentials get distinct clients.
	assert.NotSame(t, viaProcess, viaExplicit)
}

func TestRegistry_ClientCachedByCredential(t *testing.T) {
	r := newTestRegistry()
	s, err := NewSession(testKeyA)
	require.NoError(t, err)

	first, err := r.Resolve(s)
	require.NoError(t, err)
	second, err := r.Resolve(s)
	require.NoError(t, err)

	// Identity-equal: resolving twice must return the cached instance,
	// not a fresh construction.
	assert.Same(t, first, second)

	// Same credential through a different Session value still hits the
	// cache; the cache is keyed by credential, not by Session identity.
	again, err := NewSession(testKeyA)
	require.NoError(t, err)
	third, err := r.Resolve(again)
	require.NoError(t, err)
	assert.Same(t, first, third)
}

func TestRegistry_FactoryCalledOncePerCredential(t *testing.T) {
	calls := 0
	r := NewRegistryWithFactory(func(credential string) *owm.Client {
		calls++
		return owm.NewClient(credential)
	})
	s, err := NewSession(testKeyA)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := r.Resolve(s)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
}

func TestMiddleware(t *testing.T) {
	var seen *Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(Middleware(inner, nil))
	t.Cleanup(srv.Close)

	t.Run("authenticated", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, srv.URL, strings.NewReader("{}"))
		req.Header.Set("Authorization", "Bearer "+testKeyA)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, seen)
		assert.Equal(t, testKeyA, seen.Credential)
	})

	t.Run("missing credential", func(t *testing.T) {
		seen = nil
		resp, err := http.Post(srv.URL, "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Nil(t, seen)
	})
}
