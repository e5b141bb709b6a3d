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

package logger

import (
	"log/slog"
	"net/http"
	"time"
)

// Request groups the request line and client under "http".
func Request(r *http.Request) slog.Attr {
	return slog.Group("http",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
		slog.String("user_agent", r.UserAgent()),
	)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Route is the matched router pattern, e.g. /api/v1/onboarding/{wizardID}/next.
func Route(pattern string) slog.Attr {
	return slog.String("route", pattern)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Int64("duration_ms", d.Milliseconds())
}

func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

func TenantID(id string) slog.Attr {
	return slog.String("tenant_id", id)
}

// Onboarding
func WizardID(id string) slog.Attr {
	return slog.String("wizard_id", id)
}

func Step(step string) slog.Attr {
	return slog.String("step", step)
}

func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// Fields lists field names, usually the ones that failed validation.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Error renders err as a string; nil renders as "".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Operation(op string) slog.Attr {
	return slog.String("operation", op)
}

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}
