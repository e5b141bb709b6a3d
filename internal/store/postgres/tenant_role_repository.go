package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ruoomkr/platform/internal/tenant"
)

// TenantRoleRepository implements tenant.RoleRepository
type TenantRoleRepository struct {
	db *DB
}

// NewTenantRoleRepository creates a new tenant role repository
func NewTenantRoleRepository(db *DB) *TenantRoleRepository {
	return &TenantRoleRepository{db: db}
}

func insertRole(ctx context.Context, tx pgx.Tx, role *tenant.TenantUserRole) error {
	if role.GrantedAt.IsZero() {
		role.GrantedAt = time.Now()
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO tenant_user_roles (id, tenant_id, user_id, role, granted_at, granted_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, role.ID, role.TenantID, role.UserID, role.Role, role.GrantedAt, nullable(role.GrantedBy))

	if err != nil {
		if isUniqueViolation(err) {
			return tenant.ErrRoleAlreadyExists
		}
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

// AssignRole assigns a role to a user in a tenant
func (r *TenantRoleRepository) AssignRole(ctx context.Context, role *tenant.TenantUserRole) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		return insertRole(ctx, tx, role)
	})
}

// RevokeRole revokes a role from a user in a tenant
func (r *TenantRoleRepository) RevokeRole(ctx context.Context, tenantID, userID, role string) error {
	result, err := r.db.pool.Exec(ctx, `
		DELETE FROM tenant_user_roles
		WHERE tenant_id = $1 AND user_id = $2 AND role = $3
	`, tenantID, userID, role)

	if err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}

	if result.RowsAffected() == 0 {
		return tenant.ErrRoleNotFound
	}

	return nil
}

// GetUserRoles retrieves all roles a user has in a tenant
func (r *TenantRoleRepository) GetUserRoles(ctx context.Context, tenantID, userID string) ([]*tenant.TenantUserRole, error) {
	return r.queryRoles(ctx, `
		SELECT id, tenant_id, user_id, role, granted_at, granted_by
		FROM tenant_user_roles
		WHERE tenant_id = $1 AND user_id = $2
	`, tenantID, userID)
}

// GetTenantUsers retrieves all users with roles in a tenant
func (r *TenantRoleRepository) GetTenantUsers(ctx context.Context, tenantID string) ([]*tenant.TenantUserRole, error) {
	return r.queryRoles(ctx, `
		SELECT id, tenant_id, user_id, role, granted_at, granted_by
		FROM tenant_user_roles
		WHERE tenant_id = $1
		ORDER BY granted_at ASC
	`, tenantID)
}

func (r *TenantRoleRepository) queryRoles(ctx context.Context, query string, args ...any) ([]*tenant.TenantUserRole, error) {
	rows, err := r.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	defer rows.Close()

	roles := []*tenant.TenantUserRole{}
	for rows.Next() {
		var role tenant.TenantUserRole
		var grantedBy sql.NullString
		if err := rows.Scan(&role.ID, &role.TenantID, &role.UserID, &role.Role, &role.GrantedAt, &grantedBy); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		role.GrantedBy = grantedBy.String
		roles = append(roles, &role)
	}

	return roles, rows.Err()
}
