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

// Package viewstate holds small, reusable list-view state: tabs, filters and pagination.
package viewstate

import (
	"slices"
	"strconv"
)

// Tabs is a fixed set of named tabs with a default.
type Tabs struct {
	names []string
	def   string
}

// NewTabs creates a tab set. The first name is the default.
func NewTabs(names ...string) Tabs {
	t := Tabs{names: append([]string(nil), names...)}
	if len(names) > 0 {
		t.def = names[0]
	}
	return t
}

// Select returns name when it is a known tab and the default otherwise.
func (t Tabs) Select(name string) string {
	if slices.Contains(t.names, name) {
		return name
	}
	return t.def
}

// Names returns the tab names in order.
func (t Tabs) Names() []string { return append([]string(nil), t.names...) }

// Page is a 1-based page request.
type Page struct {
	Number  int `json:"page"`
	PerPage int `json:"perPage"`
}

// Pagination bounds
const (
	DefaultPerPage = 12
	MaxPerPage     = 100
)

// ParsePage reads page and perPage query values, clamping them to valid bounds.
func ParsePage(page, perPage string) Page {
	p := Page{Number: 1, PerPage: DefaultPerPage}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Number = n
	}
	if n, err := strconv.Atoi(perPage); err == nil && n > 0 {
		p.PerPage = min(n, MaxPerPage)
	}
	return p
}

// Result is one page of items.
type Result[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items according to p. A page past the end yields no items.
func Paginate[T any](items []T, p Page) Result[T] {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	total := len(items)
	res := Result[T]{
		Items:   []T{},
		Page:    p.Number,
		PerPage: p.PerPage,
		Total:   total,
	}
	if total > 0 {
		res.TotalPages = (total-1)/p.PerPage + 1
	}
	if p.Number > res.TotalPages {
		return res
	}
	start := (p.Number - 1) * p.PerPage
	end := start + min(p.PerPage, total-start)
	res.Items = append(res.Items, items[start:end]...)
	return res
}

// Filter returns the items for which keep is true. A nil keep returns a copy of items.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	return out
}
