package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOnboarding_DisabledMeterYieldsUsableInstruments(t *testing.T) {
	ctx := context.Background()
	m, err := New(ctx, Config{Enabled: false}, "ruoom-test")
	require.NoError(t, err)

	o, err := NewOnboarding(m.GetMeter())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		o.StepAdvanced.Add(ctx, 1)
		o.ValidationFailed.Add(ctx, 1)
		o.Completed.Add(ctx, 1)
		o.ActiveWizards.Add(ctx, -1)
		o.Duration.Record(ctx, 12.5)
	})
}
