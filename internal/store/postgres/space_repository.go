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

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ruoomkr/platform/internal/tenant"
)

// SpaceRepository implements tenant.SpaceRepository
type SpaceRepository struct {
	db *DB
}

// NewSpaceRepository creates a new space repository
func NewSpaceRepository(db *DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

func insertSpace(ctx context.Context, tx pgx.Tx, s *tenant.Space) error {
	var description, imageRef sql.NullString
	if s.Description != "" {
		description = sql.NullString{String: s.Description, Valid: true}
	}
	if s.ImageRef != "" {
		imageRef = sql.NullString{String: s.ImageRef, Valid: true}
	}
	amenities := s.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO spaces (id, tenant_id, name, space_type, capacity, description, amenities, image_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.ID, s.TenantID, s.Name, s.SpaceType, s.Capacity, description, amenities, imageRef, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}
	return nil
}

// ListByTenant lists a tenant's spaces in creation order
func (r *SpaceRepository) ListByTenant(ctx context.Context, tenantID string) ([]*tenant.Space, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, tenant_id, name, space_type, capacity, description, amenities, image_ref, created_at
		FROM spaces
		WHERE tenant_id = $1
		ORDER BY created_at ASC
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	defer rows.Close()

	spaces := []*tenant.Space{}
	for rows.Next() {
		var s tenant.Space
		var description, imageRef sql.NullString
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.SpaceType, &s.Capacity, &description, &s.Amenities, &imageRef, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan space: %w", err)
		}
		s.Description = description.String
		s.ImageRef = imageRef.String
		spaces = append(spaces, &s)
	}
	return spaces, rows.Err()
}
