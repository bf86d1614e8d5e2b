// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

// Package session binds upstream credentials to client instances across
// the two transport lifecycles: one process-wide session established at
// startup for stdio, and one session per inbound request for HTTP, with
// client instances cached by credential either way.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/weathertools/openweather-mcp/internal/owm"
)

// minCredentialLen is a crude format check applied before a credential is
// trusted; OpenWeather API keys are 32-character hex strings.
const minCredentialLen = 32

var (
	// ErrNoSession means no credential is available on either transport
	// path: the request carried none and no process-wide session exists.
	ErrNoSession = errors.New("no API key available: provide one via the Authorization header or the OPENWEATHER_API_KEY environment variable")

	// ErrBadCredential means the inbound credential failed the format
	// sanity check or used an unsupported authorization scheme.
	ErrBadCredential = errors.New("invalid API key: expected an Authorization: Bearer header carrying a key of at least 32 characters")
)

// Session binds a credential to a point in time. On stdio exactly one
// Session exists for the process lifetime; on HTTP one is built per
// request from the Authorization header and discarded afterwards.
type Session struct {
	Credential    string
	EstablishedAt time.Time
}

// NewSession validates a credential and wraps it in a Session.
func NewSession(credential string) (*Session, error) {
	if len(credential) < minCredentialLen {
		return nil, ErrBadCredential
	}
	return &Session{Credential: credential, EstablishedAt: time.Now()}, nil
}

// CredentialFromAuthorization extracts the upstream credential from an
// Authorization header value. Only the Bearer scheme is accepted; the
// Basic variant used by earlier deployments is superseded.
func CredentialFromAuthorization(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrBadCredential
	}
	cred := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if len(cred) < minCredentialLen {
		return "", ErrBadCredential
	}
	return cred, nil
}

// ---------------------------------------------------------------------------
// Request-scoped session transport
// ---------------------------------------------------------------------------

type ctxKey struct{}

// WithSession returns a context carrying the request-scoped session.
// The HTTP auth middleware installs one per inbound request.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request-scoped session, or nil when the call
// arrived over a transport that does not carry one (stdio).
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

// newClientFunc constructs the upstream client for a credential.
// Swappable so tests can point clients at a fake upstream.
type newClientFunc func(credential string) *owm.Client

// Registry resolves sessions to cached upstream clients. Clients are
// keyed strictly by credential value: the first resolution for a
// credential constructs the client, later ones return the same instance.
// Entries are never evicted; unbounded growth across many distinct
// credentials is an accepted tradeoff of the design.
type Registry struct {
	newClient newClientFunc

	mu      sync.Mutex
	process *Session
	clients map[string]*owm.Client
}

// NewRegistry builds a Registry whose clients use the production
// OpenWeather endpoints.
func NewRegistry() *Registry {
	return NewRegistryWithFactory(func(credential string) *owm.Client {
		return owm.NewClient(credential)
	})
}

// NewRegistryWithFactory builds a Registry with a custom client
// constructor.
func NewRegistryWithFactory(fn newClientFunc) *Registry {
	return &Registry{
		newClient: fn,
		clients:   make(map[string]*owm.Client),
	}
}

// SetProcessSession installs the process-wide stdio session. Called once
// at startup; the session is held for the process lifetime and never
// refreshed.
func (r *Registry) SetProcessSession(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.process = s
}

// Resolve returns the upstream client for a session. An explicit session
// (the HTTP path) takes priority; otherwise the process-wide stdio
// session is used. With neither, Resolve fails with ErrNoSession.
func (r *Registry) Resolve(s *Session) (*owm.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil {
		s = r.process
	}
	if s == nil {
		return nil, ErrNoSession
	}

	if c, ok := r.clients[s.Credential]; ok {
		return c, nil
	}
	c := r.newClient(s.Credential)
	r.clients[s.Credential] = c
	return c, nil
}
