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
	"fmt"
	"time"
)

// Completer receives the aggregate once the last step validates.
type Completer interface {
	Complete(ctx context.Context, data Data) error
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, data Data) error

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, data Data) error { return f(ctx, data) }

// Outcome is the result of a forward transition.
type Outcome string

// Forward transition outcomes
const (
	OutcomeBlocked   Outcome = "blocked"
	OutcomeAdvanced  Outcome = "advanced"
	OutcomeCompleted Outcome = "completed"
)

// Wizard walks the ordered onboarding steps and accumulates their payloads.
//
// A Wizard is not safe for concurrent use; the owner serialises access.
type Wizard struct {
	id        string
	steps     []Step
	current   int
	complete  bool
	data      Data
	completer Completer
	startedAt time.Time
}

// NewWizard creates a wizard positioned on the first step with an empty aggregate.
func NewWizard(id string, completer Completer) *Wizard {
	return &Wizard{
		id:        id,
		steps:     []Step{NewBusinessStep(), NewTemplateStep(), NewSpaceStep()},
		completer: completer,
	}
}

// ID returns the wizard identifier.
func (w *Wizard) ID() string { return w.id }

// Current returns the active step.
func (w *Wizard) Current() Step { return w.steps[w.current] }

// StepIndex returns the 1-based position of the active step.
func (w *Wizard) StepIndex() int { return w.current + 1 }

// TotalSteps returns the number of steps.
func (w *Wizard) TotalSteps() int { return len(w.steps) }

// IsComplete reports whether the terminal state was reached.
func (w *Wizard) IsComplete() bool { return w.complete }

// Data returns a copy of the merged aggregate.
func (w *Wizard) Data() Data { return w.data.Clone() }

// Set changes a field on the active step.
func (w *Wizard) Set(field, value string) error {
	if w.complete {
		return ErrWizardComplete
	}
	if err := w.Current().Set(field, value); err != nil {
		return err
	}
	if w.Current().ID() == StepBusiness && field == FieldBusinessType {
		w.rebaseDownstream()
	}
	return nil
}

// Toggle flips membership of value in a set-valued field on the active step.
func (w *Wizard) Toggle(field, value string) error {
	if w.complete {
		return ErrWizardComplete
	}
	return w.Current().Toggle(field, value)
}

// Blur marks a field on the active step as touched and validates it.
func (w *Wizard) Blur(field string) error {
	if w.complete {
		return ErrWizardComplete
	}
	return w.Current().Blur(field)
}

// Next submits the active step. A step with field errors blocks without error. On the
// last step the completer runs; if it fails the wizard stays on that step.
func (w *Wizard) Next(ctx context.Context) (Outcome, error) {
	if w.complete {
		return OutcomeBlocked, ErrWizardComplete
	}
	step := w.Current()
	if !step.Submit() {
		return OutcomeBlocked, nil
	}
	w.data.merge(step.Payload())

	if w.current < len(w.steps)-1 {
		w.current++
		w.Current().Rebase(w.businessType())
		return OutcomeAdvanced, nil
	}

	if w.completer != nil {
		if err := w.completer.Complete(ctx, w.data.Clone()); err != nil {
			return OutcomeBlocked, fmt.Errorf("failed to complete onboarding: %w", err)
		}
	}
	w.complete = true
	return OutcomeCompleted, nil
}

// Back moves to the previous step. Entered and merged data are kept.
func (w *Wizard) Back() error {
	if w.complete {
		return ErrWizardComplete
	}
	if w.current == 0 {
		return ErrNoPreviousStep
	}
	w.current--
	return nil
}

// View is a render-ready snapshot of the wizard.
type View struct {
	ID          string     `json:"id"`
	Step        StepID     `json:"step"`
	StepIndex   int        `json:"stepIndex"`
	TotalSteps  int        `json:"totalSteps"`
	Complete    bool       `json:"complete"`
	Current     StepView   `json:"current"`
	Data        Data       `json:"data"`
	Recommended []Template `json:"recommended,omitempty"`
}

// View snapshots the wizard.
func (w *Wizard) View() View {
	v := View{
		ID:         w.id,
		Step:       w.Current().ID(),
		StepIndex:  w.StepIndex(),
		TotalSteps: w.TotalSteps(),
		Complete:   w.complete,
		Current:    w.Current().View(),
		Data:       w.Data(),
	}
	if ts, ok := w.Current().(*TemplateStep); ok {
		v.Recommended = ts.Recommended()
	}
	return v
}

func (w *Wizard) businessType() BusinessType {
	return w.steps[0].(*BusinessStep).BusinessType()
}

func (w *Wizard) rebaseDownstream() {
	bt := w.businessType()
	for _, s := range w.steps[1:] {
		s.Rebase(bt)
	}
}
