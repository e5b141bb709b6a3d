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
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/ruoomkr/platform/internal/audit"
	"github.com/ruoomkr/platform/internal/id"
	"github.com/ruoomkr/platform/internal/observability/logger"
	"github.com/ruoomkr/platform/internal/observability/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ProvisionFunc persists a completed aggregate for ownerID and returns the new tenant ID.
type ProvisionFunc func(ctx context.Context, ownerID string, data Data) (string, error)

// Config holds onboarding service settings
type Config struct {
	RedirectPath string
}

// Result is returned by Next.
type Result struct {
	Outcome    Outcome `json:"outcome"`
	Wizard     View    `json:"wizard"`
	TenantID   string  `json:"tenantId,omitempty"`
	RedirectTo string  `json:"redirectTo,omitempty"`
}

// Service drives wizards on behalf of signed-in users.
type Service struct {
	registry    *Registry
	provision   ProvisionFunc
	auditLogger audit.Logger
	tracer      trace.Tracer
	instruments *metrics.Onboarding
	cfg         Config
	now         func() time.Time
}

// NewService creates a new onboarding service
func NewService(
	registry *Registry,
	provision ProvisionFunc,
	auditLogger audit.Logger,
	tracer trace.Tracer,
	instruments *metrics.Onboarding,
	cfg Config,
) *Service {
	if cfg.RedirectPath == "" {
		cfg.RedirectPath = "/dashboard"
	}
	registry.OnEvict(func(n int) {
		instruments.ActiveWizards.Add(context.Background(), -int64(n))
		slog.Info("evicted idle onboarding wizards", slog.Int("count", n))
	})
	return &Service{
		registry:    registry,
		provision:   provision,
		auditLogger: auditLogger,
		tracer:      tracer,
		instruments: instruments,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Start creates a wizard for userID.
func (s *Service) Start(ctx context.Context, userID string) (View, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Start")
	defer span.End()

	w := NewWizard(id.NewUUIDv7(), nil)
	w.startedAt = s.now()
	s.registry.Put(userID, w)
	s.instruments.ActiveWizards.Add(ctx, 1)
	span.SetAttributes(attribute.String("wizard.id", w.ID()))

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeOnboardingStarted,
		ActorID:  userID,
		Resource: w.ID(),
		Metadata: map[string]any{"started_at": s.now().UTC().Format(time.RFC3339Nano)},
	})
	slog.InfoContext(ctx, "onboarding started", logger.WizardID(w.ID()), logger.UserID(userID))
	return w.View(), nil
}

// Get returns the current view of a wizard.
func (s *Service) Get(ctx context.Context, userID, wizardID string) (View, error) {
	var v View
	err := s.registry.With(wizardID, userID, func(w *Wizard) error {
		v = w.View()
		return nil
	})
	return v, err
}

// Change sets a field on the active step.
func (s *Service) Change(ctx context.Context, userID, wizardID, field, value string) (View, error) {
	return s.mutate(wizardID, userID, func(w *Wizard) error { return w.Set(field, value) })
}

// Toggle flips a set-valued field on the active step.
func (s *Service) Toggle(ctx context.Context, userID, wizardID, field, value string) (View, error) {
	return s.mutate(wizardID, userID, func(w *Wizard) error { return w.Toggle(field, value) })
}

// Blur validates one field on the active step.
func (s *Service) Blur(ctx context.Context, userID, wizardID, field string) (View, error) {
	return s.mutate(wizardID, userID, func(w *Wizard) error { return w.Blur(field) })
}

// Back returns to the previous step.
func (s *Service) Back(ctx context.Context, userID, wizardID string) (View, error) {
	v, err := s.mutate(wizardID, userID, func(w *Wizard) error { return w.Back() })
	if err == nil {
		s.auditLogger.Log(ctx, audit.Event{
			Type:     audit.TypeOnboardingStepReverted,
			ActorID:  userID,
			Resource: wizardID,
			Metadata: map[string]any{"step": string(v.Step)},
		})
	}
	return v, err
}

// Next submits the active step. On completion the aggregate is provisioned, the wizard is
// discarded and the result carries the path the caller should navigate to.
func (s *Service) Next(ctx context.Context, userID, wizardID string) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Next", trace.WithAttributes(attribute.String("wizard.id", wizardID)))
	defer span.End()

	var (
		res       Result
		tenantID  string
		from      StepID
		startedAt time.Time
	)
	err := s.registry.With(wizardID, userID, func(w *Wizard) error {
		from = w.Current().ID()
		startedAt = w.startedAt
		w.completer = CompleterFunc(func(ctx context.Context, data Data) error {
			tid, err := s.provision(ctx, userID, data)
			if err != nil {
				return err
			}
			tenantID = tid
			return nil
		})
		outcome, err := w.Next(ctx)
		res = Result{Outcome: outcome, Wizard: w.View()}
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, ErrWizardNotFound) && !errors.Is(err, ErrWizardForbidden) {
			slog.ErrorContext(ctx, "onboarding next failed", logger.WizardID(wizardID), logger.Step(string(from)), logger.Error(err))
		}
		return res, err
	}

	span.SetAttributes(attribute.String("onboarding.outcome", string(res.Outcome)), attribute.String("onboarding.step", string(from)))

	switch res.Outcome {
	case OutcomeBlocked:
		s.instruments.ValidationFailed.Add(ctx, 1)
		slog.DebugContext(ctx, "onboarding step rejected", logger.WizardID(wizardID), logger.Step(string(from)),
			logger.Outcome(string(res.Outcome)), logger.Fields(slices.Sorted(maps.Keys(res.Wizard.Current.Errors))))
	case OutcomeAdvanced:
		s.instruments.StepAdvanced.Add(ctx, 1)
		s.auditLogger.Log(ctx, audit.Event{
			Type:     audit.TypeOnboardingStepAdvanced,
			ActorID:  userID,
			Resource: wizardID,
			Metadata: map[string]any{"from": string(from), "to": string(res.Wizard.Step)},
		})
	case OutcomeCompleted:
		s.instruments.StepAdvanced.Add(ctx, 1)
		s.instruments.Completed.Add(ctx, 1)
		s.instruments.Duration.Record(ctx, s.now().Sub(startedAt).Seconds())
		if s.registry.Remove(wizardID) {
			s.instruments.ActiveWizards.Add(ctx, -1)
		}
		res.TenantID = tenantID
		res.RedirectTo = s.cfg.RedirectPath
		s.auditLogger.Log(ctx, audit.Event{
			Type:     audit.TypeOnboardingCompleted,
			TenantID: tenantID,
			ActorID:  userID,
			Resource: wizardID,
			Metadata: completionMetadata(res.Wizard.Data),
		})
		slog.InfoContext(ctx, "onboarding completed", logger.WizardID(wizardID), logger.TenantID(tenantID))
	}
	return res, nil
}

// Discard drops a wizard without completing it.
func (s *Service) Discard(ctx context.Context, userID, wizardID string) error {
	if err := s.registry.With(wizardID, userID, func(*Wizard) error { return nil }); err != nil {
		return err
	}
	if !s.registry.Remove(wizardID) {
		return ErrWizardNotFound
	}
	s.instruments.ActiveWizards.Add(ctx, -1)
	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeOnboardingDiscarded,
		ActorID:  userID,
		Resource: wizardID,
	})
	return nil
}

func (s *Service) mutate(wizardID, userID string, fn func(*Wizard) error) (View, error) {
	var v View
	err := s.registry.With(wizardID, userID, func(w *Wizard) error {
		if err := fn(w); err != nil {
			return err
		}
		v = w.View()
		return nil
	})
	return v, err
}

func completionMetadata(d Data) map[string]any {
	meta := map[string]any{}
	if b := d.BusinessInfo; b != nil {
		meta["business_type"] = string(b.BusinessType)
		meta["email"] = b.Email
		meta["phone"] = b.Phone
	}
	if d.SelectedTemplate != nil {
		meta["template"] = *d.SelectedTemplate
	}
	if sp := d.SpaceInfo; sp != nil {
		meta["space_type"] = sp.SpaceType
	}
	return meta
}
