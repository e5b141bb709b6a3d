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
	"fmt"
	"maps"
	"slices"
)

// StepID names a wizard step.
type StepID string

// Steps in wizard order
const (
	StepBusiness StepID = "business"
	StepTemplate StepID = "template"
	StepSpace    StepID = "space"
)

// Status is the lifecycle of a single step's form.
type Status string

// Step statuses
const (
	StatusPristine Status = "pristine"
	StatusEditing  Status = "editing"
	StatusInvalid  Status = "invalid"
	StatusValid    Status = "valid"
)

// Step is one data-collection screen of the wizard. A step owns its form state and only
// learns about upstream choices through Rebase.
type Step interface {
	ID() StepID
	Status() Status
	Set(field, value string) error
	Toggle(field, value string) error
	Blur(field string) error
	// Submit revalidates every field and reports whether the step may advance.
	Submit() bool
	// Rebase hands the step the current business type and clears dependent values
	// that are no longer valid for it.
	Rebase(bt BusinessType)
	View() StepView
	// Payload returns the step's contribution to the aggregate. Only meaningful after a
	// successful Submit.
	Payload() Data
}

// StepView is a read-only snapshot of a step for rendering.
type StepView struct {
	ID      StepID              `json:"id"`
	Status  Status              `json:"status"`
	Values  map[string]string   `json:"values"`
	Sets    map[string][]string `json:"sets,omitempty"`
	Errors  map[string]string   `json:"errors"`
	Touched map[string]bool     `json:"touched"`
}

// form is the shared state holder behind every step.
type form struct {
	id        StepID
	fields    []string
	setFields []string
	values    map[string]string
	sets      map[string][]string
	errors    map[string]string
	touched   map[string]bool
	status    Status
	check     func(field string) string
}

func newForm(id StepID, fields, setFields []string, check func(string) string) *form {
	f := &form{
		id:        id,
		fields:    fields,
		setFields: setFields,
		values:    make(map[string]string, len(fields)),
		sets:      make(map[string][]string, len(setFields)),
		errors:    make(map[string]string),
		touched:   make(map[string]bool),
		status:    StatusPristine,
		check:     check,
	}
	for _, name := range fields {
		f.values[name] = ""
	}
	for _, name := range setFields {
		f.sets[name] = []string{}
	}
	return f
}

func (f *form) ID() StepID     { return f.id }
func (f *form) Status() Status { return f.status }

func (f *form) isScalar(field string) bool { return slices.Contains(f.fields, field) }
func (f *form) isSet(field string) bool    { return slices.Contains(f.setFields, field) }

func (f *form) set(field, value string) error {
	if !f.isScalar(field) {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	f.values[field] = value
	f.changed(field)
	return nil
}

func (f *form) toggle(field, value string) error {
	if !f.isSet(field) {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	cur := f.sets[field]
	if i := slices.Index(cur, value); i >= 0 {
		f.sets[field] = slices.Delete(cur, i, i+1)
	} else {
		f.sets[field] = append(cur, value)
	}
	f.changed(field)
	return nil
}

// changed moves the form into editing and keeps an already visible error current.
func (f *form) changed(field string) {
	f.status = StatusEditing
	f.revalidate(field)
}

func (f *form) blur(field string) error {
	if !f.isScalar(field) && !f.isSet(field) {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	f.touched[field] = true
	f.validate(field)
	return nil
}

// revalidate refreshes the error of a field the user has already seen.
func (f *form) revalidate(field string) {
	if f.touched[field] {
		f.validate(field)
	}
}

func (f *form) validate(field string) {
	if msg := f.check(field); msg != "" {
		f.errors[field] = msg
		return
	}
	delete(f.errors, field)
}

func (f *form) submit() bool {
	for _, name := range f.fields {
		f.touched[name] = true
		f.validate(name)
	}
	for _, name := range f.setFields {
		f.touched[name] = true
		f.validate(name)
	}
	if len(f.errors) > 0 {
		f.status = StatusInvalid
		return false
	}
	f.status = StatusValid
	return true
}

// reset clears a dependent field that became stale. It never counts as a user edit.
func (f *form) reset(field string) {
	if f.isScalar(field) {
		f.values[field] = ""
	} else {
		f.sets[field] = []string{}
	}
	delete(f.errors, field)
	delete(f.touched, field)
	if f.status == StatusValid {
		f.status = StatusEditing
	}
}

func (f *form) view() StepView {
	sets := make(map[string][]string, len(f.sets))
	for k, v := range f.sets {
		sets[k] = slices.Clone(v)
	}
	return StepView{
		ID:      f.id,
		Status:  f.status,
		Values:  maps.Clone(f.values),
		Sets:    sets,
		Errors:  maps.Clone(f.errors),
		Touched: maps.Clone(f.touched),
	}
}
