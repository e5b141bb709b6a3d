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

package onboarding

import (
	"sync"
	"sync/atomic"
	"time"
)

type entry struct {
	mu       sync.Mutex
	wizard   *Wizard
	ownerID  string
	lastSeen atomic.Int64
}

// Registry holds live wizards in memory. Wizards are never persisted; an idle wizard is
// dropped after the TTL and the user starts over.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
	onEvict func(n int)

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewRegistry creates a registry. When sweepInterval is positive a background goroutine
// evicts idle wizards until Close is called.
func NewRegistry(ttl, sweepInterval time.Duration) *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if sweepInterval > 0 {
		go r.sweepLoop(sweepInterval)
	} else {
		close(r.done)
	}
	return r
}

// Put registers a wizard for ownerID.
func (r *Registry) Put(ownerID string, w *Wizard) {
	e := &entry{wizard: w, ownerID: ownerID}
	e.lastSeen.Store(r.now().UnixNano())

	r.mu.Lock()
	r.entries[w.ID()] = e
	r.mu.Unlock()
}

// With runs fn with exclusive access to the wizard id owned by ownerID.
func (r *Registry) With(id, ownerID string, fn func(*Wizard) error) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	r.mu.Unlock()
	if !ok {
		return ErrWizardNotFound
	}
	if e.ownerID != ownerID {
		return ErrWizardForbidden
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen.Store(r.now().UnixNano())
	return fn(e.wizard)
}

// Remove drops a wizard and reports whether it was still registered.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// Len returns the number of live wizards.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// OnEvict registers a hook called with the number of wizards each sweep dropped.
func (r *Registry) OnEvict(fn func(n int)) {
	r.mu.Lock()
	r.onEvict = fn
	r.mu.Unlock()
}

// Sweep evicts wizards idle for longer than the TTL and returns how many were dropped.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl).UnixNano()

	r.mu.Lock()
	n := 0
	for id, e := range r.entries {
		if e.lastSeen.Load() < cutoff {
			delete(r.entries, id)
			n++
		}
	}
	hook := r.onEvict
	r.mu.Unlock()

	if n > 0 && hook != nil {
		hook(n)
	}
	return n
}

// Close stops the sweeper and waits for it to exit.
func (r *Registry) Close() {
	r.once.Do(func() { close(r.stop) })
	<-r.done
}

func (r *Registry) sweepLoop(interval time.Duration) {
	defer close(r.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
