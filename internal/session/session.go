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
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrSessionInvalid  = errors.New("session invalid")
)

// Session is a signed-in browser. Sessions carry the email given at mock sign-in so
// handlers can answer /auth/me without a user directory.
type Session struct {
	ID         string
	TenantID   string
	UserID     string
	Email      string
	IPAddress  string
	UserAgent  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// Live reports whether the session is usable at now. A zero idleTimeout disables the idle check.
func (s *Session) Live(now time.Time, idleTimeout time.Duration) bool {
	if now.After(s.ExpiresAt) {
		return false
	}
	return idleTimeout <= 0 || now.Sub(s.LastSeenAt) <= idleTimeout
}

// User returns the principal the session belongs to.
func (s *Session) User() User {
	return User{ID: s.UserID, Email: s.Email, SessionID: s.ID}
}

// Repository persists sessions.
type Repository interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	// Update stores LastSeenAt only.
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
	// DeleteExpired returns how many sessions were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
