// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package session

import (
	"net/http"

	"go.uber.org/zap"
)

// Middleware authenticates inbound HTTP requests. The Bearer credential
// from the Authorization header becomes a request-scoped Session on the
// request context, where tool handlers pick it up; requests without a
// valid credential are rejected before they reach the MCP handler.
// Sessions are built fresh per request and never cached here — client
// reuse happens downstream in the registry, keyed by credential value.
func Middleware(next http.Handler, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cred, err := CredentialFromAuthorization(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn("rejected unauthenticated request",
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err))
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		s, err := NewSession(cred)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
