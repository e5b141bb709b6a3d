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
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ruoomkr/platform/internal/tenant"
)

// TenantRepository implements tenant.Repository and tenant.Provisioner
type TenantRepository struct {
	db *DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *DB) *TenantRepository {
	return &TenantRepository{db: db}
}

const tenantColumns = `id, name, status, business_type, business_category, description, address,
	phone, email, website, template_id, owner_id, created_at, updated_at`

func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	var t tenant.Tenant
	var website sql.NullString
	err := row.Scan(
		&t.ID, &t.Name, &t.Status, &t.BusinessType, &t.BusinessCategory, &t.Description, &t.Address,
		&t.Phone, &t.Email, &website, &t.TemplateID, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Website = website.String
	return &t, nil
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := scanTenant(r.db.pool.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return t, nil
}

// ListByOwner lists the tenants created by ownerID, newest first
func (r *TenantRepository) ListByOwner(ctx context.Context, ownerID string) ([]*tenant.Tenant, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT `+tenantColumns+`
		FROM tenants
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := []*tenant.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

// Provision inserts the tenant, its first space and the owner role in one transaction
func (r *TenantRepository) Provision(ctx context.Context, t *tenant.Tenant, first *tenant.Space, owner *tenant.TenantUserRole) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		var website sql.NullString
		if t.Website != "" {
			website = sql.NullString{String: t.Website, Valid: true}
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO tenants (`+tenantColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`,
			t.ID, t.Name, t.Status, t.BusinessType, t.BusinessCategory, t.Description, t.Address,
			t.Phone, t.Email, website, t.TemplateID, t.OwnerID, t.CreatedAt, t.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		if err := insertSpace(ctx, tx, first); err != nil {
			return err
		}

		if err := insertRole(ctx, tx, owner); err != nil {
			return err
		}
		return nil
	})
}
