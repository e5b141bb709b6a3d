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

package audit

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Event types
const (
	TypeSessionCreated         = "session_created"
	TypeLogout                 = "logout"
	TypeOnboardingStarted      = "onboarding_started"
	TypeOnboardingStepAdvanced = "onboarding_step_advanced"
	TypeOnboardingStepReverted = "onboarding_step_reverted"
	TypeOnboardingCompleted    = "onboarding_completed"
	TypeOnboardingDiscarded    = "onboarding_discarded"
	TypeTenantProvisioned      = "tenant_provisioned"
	TypeRoleAssigned           = "role_assigned"
	TypeRoleRevoked            = "role_revoked"
	TypeChatHistoryCleared     = "chat_history_cleared"
)

// Event is one auditable action. Resource names the object acted on: a wizard ID, "tenant",
// "session" and so on.
type Event struct {
	Type      string
	TenantID  string
	ActorID   string
	Resource  string
	Metadata  map[string]any
	Timestamp time.Time
	IPAddress string
	UserAgent string
}

// Logger records audit events. Implementations must not fail the caller.
type Logger interface {
	Log(ctx context.Context, event Event)
}

// SlogLogger writes each event as a single AUDIT_EVENT record.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger returns a logger writing to l, or to the process default logger when l is nil.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{log: l}
}

func (l *SlogLogger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	attrs := []slog.Attr{
		slog.String("component", "audit"),
		slog.String("audit_type", event.Type),
		slog.Time("timestamp", event.Timestamp),
	}
	for _, kv := range [][2]string{
		{"tenant_id", event.TenantID},
		{"actor_id", event.ActorID},
		{"resource", event.Resource},
		{"ip_address", event.IPAddress},
		{"user_agent", event.UserAgent},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}

	if len(event.Metadata) > 0 {
		keys := make([]string, 0, len(event.Metadata))
		for k := range event.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		group := make([]any, 0, len(keys))
		for _, k := range keys {
			group = append(group, slog.Any(k, redact(k, event.Metadata[k])))
		}
		attrs = append(attrs, slog.Group("metadata", group...))
	}

	log := l.log
	if log == nil {
		log = slog.Default()
	}
	log.LogAttrs(ctx, slog.LevelInfo, "AUDIT_EVENT", attrs...)
}

var secretMarkers = []string{"password", "secret", "token", "key", "authorization", "hash", "credential"}

func isSecret(key string) bool {
	k := strings.ToLower(key)
	return slices.ContainsFunc(secretMarkers, func(m string) bool { return strings.Contains(k, m) })
}

// redact hides secrets entirely and masks business contact details.
func redact(key string, v any) any {
	if isSecret(key) {
		return "[REDACTED]"
	}
	switch strings.ToLower(key) {
	case "email":
		return maskEmail(fmt.Sprint(v))
	case "phone":
		return maskPhone(fmt.Sprint(v))
	}
	return v
}

// maskEmail keeps the first rune of the local part and the domain: h***@ruoom.kr.
func maskEmail(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" {
		return "***"
	}
	first := []rune(local)[0]
	return string(first) + "***@" + domain
}

// maskPhone keeps the last four digits: ***-****-5678.
func maskPhone(s string) string {
	if len(s) < 4 {
		return "***"
	}
	return "***-****-" + s[len(s)-4:]
}
