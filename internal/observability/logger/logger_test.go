package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), "level %q", name)
	}
}

func TestNew_JSONOutputCarriesServiceAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", ServiceName: "ruoom-test", Output: &buf})

	log.Info("wizard advanced", WizardID("wiz-1"), Step("business"), Error(errors.New("boom")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "wizard advanced", rec["msg"])
	assert.Equal(t, "ruoom-test", rec["service"])
	assert.Equal(t, "wiz-1", rec["wizard_id"])
	assert.Equal(t, "business", rec["step"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "error", Format: "text", ServiceName: "ruoom-test", Output: &buf})

	log.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestError_NilIsEmpty(t *testing.T) {
	assert.Equal(t, "", Error(nil).Value.String())
}

func TestRequestAttrsAreGrouped(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", ServiceName: "ruoom-test", Output: &buf})

	r := httptest.NewRequest("POST", "/api/v1/onboarding/w1/next", nil)
	r.Header.Set("User-Agent", "wizard-test")
	log.Info("http_request", Request(r), Duration(1500*time.Millisecond), Fields([]string{"email", "phone"}))

	var rec struct {
		HTTP struct {
			Method    string `json:"method"`
			Path      string `json:"path"`
			UserAgent string `json:"user_agent"`
		} `json:"http"`
		DurationMS int64    `json:"duration_ms"`
		Fields     []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "POST", rec.HTTP.Method)
	assert.Equal(t, "/api/v1/onboarding/w1/next", rec.HTTP.Path)
	assert.Equal(t, "wizard-test", rec.HTTP.UserAgent)
	assert.Equal(t, int64(1500), rec.DurationMS)
	assert.Equal(t, []string{"email", "phone"}, rec.Fields)
}
