// Copyright 2026 The Ruoom Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package session

import (
	"context"
)

// User is the signed-in principal as seen by request handlers.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	SessionID string `json:"-"`
}

// Provider answers who is signed in for the current request and ends that sign-in.
type Provider interface {
	CurrentUser(ctx context.Context) (User, bool)
	SignOut(ctx context.Context) error
}

type ctxKey struct{}

// WithSession attaches a resolved session to ctx.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session attached by WithSession.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(*Session)
	return sess, ok && sess != nil
}

// CurrentUser implements Provider using the session attached to ctx.
func (s *Service) CurrentUser(ctx context.Context) (User, bool) {
	sess, ok := FromContext(ctx)
	if !ok {
		return User{}, false
	}
	return sess.User(), true
}

// SignOut implements Provider by destroying the session attached to ctx.
func (s *Service) SignOut(ctx context.Context) error {
	sess, ok := FromContext(ctx)
	if !ok {
		return ErrSessionNotFound
	}
	return s.Destroy(ctx, sess.ID)
}

var _ Provider = (*Service)(nil)
