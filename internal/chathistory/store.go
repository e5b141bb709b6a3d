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

// Package chathistory keeps the assistant chat transcript of each user, capped to the most
// recent messages.
package chathistory

import (
	"context"
	"errors"
	"time"
)

// DefaultLimit is the number of messages kept per user when none is configured.
const DefaultLimit = 50

// Message roles
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ErrInvalidMessage is returned for a message with an unknown role or empty text.
var ErrInvalidMessage = errors.New("invalid chat message")

// Message is one line of a transcript.
type Message struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Validate checks the role and text of m.
func (m Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleBot {
		return ErrInvalidMessage
	}
	if m.Text == "" {
		return ErrInvalidMessage
	}
	return nil
}

// Store persists transcripts keyed by user. Implementations keep at most their limit of the
// newest messages; List returns them oldest first.
type Store interface {
	Append(ctx context.Context, userID string, msg Message) error
	List(ctx context.Context, userID string) ([]Message, error)
	Clear(ctx context.Context, userID string) error
}
