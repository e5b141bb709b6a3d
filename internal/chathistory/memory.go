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

package chathistory

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu    sync.Mutex
	limit int
	logs  map[string][]Message
}

// NewMemoryStore creates a store keeping limit messages per user.
func NewMemoryStore(limit int) *MemoryStore {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &MemoryStore{limit: limit, logs: make(map[string][]Message)}
}

func (s *MemoryStore) Append(ctx context.Context, userID string, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	log := append(s.logs[userID], msg)
	if over := len(log) - s.limit; over > 0 {
		log = append([]Message(nil), log[over:]...)
	}
	s.logs[userID] = log
	return nil
}

func (s *MemoryStore) List(ctx context.Context, userID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message{}, s.logs[userID]...), nil
}

func (s *MemoryStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logs, userID)
	return nil
}

var _ Store = (*MemoryStore)(nil)
