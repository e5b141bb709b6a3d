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

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Config holds metrics configuration
type Config struct {
	Enabled bool
}

// Meter wraps OpenTelemetry meter
type Meter struct {
	meter metric.Meter
}

// New creates a new meter instance. When disabled every instrument is a no-op.
func New(ctx context.Context, cfg Config, serviceName string) (*Meter, error) {
	if !cfg.Enabled {
		return &Meter{meter: noop.NewMeterProvider().Meter(serviceName)}, nil
	}
	return &Meter{meter: otel.Meter(serviceName)}, nil
}

// GetMeter returns the underlying meter
func (m *Meter) GetMeter() metric.Meter {
	return m.meter
}

// Onboarding holds the instruments recorded by the onboarding flow.
type Onboarding struct {
	StepAdvanced     metric.Int64Counter
	ValidationFailed metric.Int64Counter
	Completed        metric.Int64Counter
	ActiveWizards    metric.Int64UpDownCounter
	Duration         metric.Float64Histogram
}

// NewOnboarding registers the onboarding instruments on m.
func NewOnboarding(m metric.Meter) (*Onboarding, error) {
	w := &Meter{meter: m}
	var (
		o   Onboarding
		err error
	)
	if o.StepAdvanced, err = w.CreateCounter("onboarding_step_advanced_total", "Onboarding steps submitted successfully"); err != nil {
		return nil, err
	}
	if o.ValidationFailed, err = w.CreateCounter("onboarding_validation_failed_total", "Onboarding step submissions rejected by field validation"); err != nil {
		return nil, err
	}
	if o.Completed, err = w.CreateCounter("onboarding_completed_total", "Onboarding flows that reached completion"); err != nil {
		return nil, err
	}
	if o.ActiveWizards, err = w.CreateUpDownCounter("onboarding_active_wizards", "Onboarding wizards currently held in memory"); err != nil {
		return nil, err
	}
	if o.Duration, err = w.CreateHistogram("onboarding_duration_seconds", "Time from wizard start to completion", "s"); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateCounter creates a new counter metric
func (m *Meter) CreateCounter(name, description string) (metric.Int64Counter, error) {
	counter, err := m.meter.Int64Counter(
		name,
		metric.WithDescription(description),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return counter, nil
}

// CreateHistogram creates a new histogram metric
func (m *Meter) CreateHistogram(name, description, unit string) (metric.Float64Histogram, error) {
	histogram, err := m.meter.Float64Histogram(
		name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram %s: %w", name, err)
	}
	return histogram, nil
}

// CreateUpDownCounter creates a new up/down counter metric
func (m *Meter) CreateUpDownCounter(name, description string) (metric.Int64UpDownCounter, error) {
	counter, err := m.meter.Int64UpDownCounter(
		name,
		metric.WithDescription(description),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create up/down counter %s: %w", name, err)
	}
	return counter, nil
}
