package tenant

import (
	"context"
	"errors"
)

var (
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleAlreadyExists = errors.New("role assignment already exists")
	ErrInvalidRole       = errors.New("invalid role")
	ErrIncompleteData    = errors.New("onboarding data is incomplete")
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Tenant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Tenant, error)
}

type SpaceRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*Space, error)
}

type RoleRepository interface {
	AssignRole(ctx context.Context, role *TenantUserRole) error
	RevokeRole(ctx context.Context, tenantID, userID, role string) error
	GetUserRoles(ctx context.Context, tenantID, userID string) ([]*TenantUserRole, error)
	GetTenantUsers(ctx context.Context, tenantID string) ([]*TenantUserRole, error)
}

// Provisioner stores a new tenant, its first space and the owner role atomically.
type Provisioner interface {
	Provision(ctx context.Context, t *Tenant, first *Space, owner *TenantUserRole) error
}
