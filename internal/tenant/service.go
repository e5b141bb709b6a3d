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

package tenant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ruoomkr/platform/internal/audit"
	"github.com/ruoomkr/platform/internal/id"
	"github.com/ruoomkr/platform/internal/observability/logger"
	"github.com/ruoomkr/platform/internal/onboarding"
)

// Service manages tenants created through onboarding.
type Service struct {
	repo        Repository
	spaceRepo   SpaceRepository
	roleRepo    RoleRepository
	provisioner Provisioner
	auditLogger audit.Logger
	now         func() time.Time
}

// NewService creates a new tenant service
func NewService(repo Repository, spaceRepo SpaceRepository, roleRepo RoleRepository, provisioner Provisioner, auditLogger audit.Logger) *Service {
	return &Service{
		repo:        repo,
		spaceRepo:   spaceRepo,
		roleRepo:    roleRepo,
		provisioner: provisioner,
		auditLogger: auditLogger,
		now:         time.Now,
	}
}

// Provision turns a completed onboarding aggregate into a tenant owned by ownerID, with the
// collected space as its first space.
func (s *Service) Provision(ctx context.Context, ownerID string, data onboarding.Data) (*Tenant, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id is required")
	}
	if !data.IsComplete() {
		return nil, ErrIncompleteData
	}

	now := s.now()
	bi := data.BusinessInfo
	t := &Tenant{
		ID:               id.NewUUIDv7(),
		Name:             bi.BusinessName,
		Status:           StatusActive,
		BusinessType:     string(bi.BusinessType),
		BusinessCategory: bi.BusinessCategory,
		Description:      bi.Description,
		Address:          bi.Address,
		Phone:            bi.Phone,
		Email:            bi.Email,
		Website:          bi.Website,
		TemplateID:       *data.SelectedTemplate,
		OwnerID:          ownerID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	si := data.SpaceInfo
	space := &Space{
		ID:          id.NewUUIDv7(),
		TenantID:    t.ID,
		Name:        si.SpaceName,
		SpaceType:   si.SpaceType,
		Capacity:    si.Capacity,
		Description: si.Description,
		Amenities:   append([]string{}, si.Amenities...),
		ImageRef:    si.Image,
		CreatedAt:   now,
	}

	owner := &TenantUserRole{
		ID:        id.NewUUIDv7(),
		TenantID:  t.ID,
		UserID:    ownerID,
		Role:      RoleTenantOwner,
		GrantedAt: now,
		GrantedBy: ownerID,
	}

	if err := s.provisioner.Provision(ctx, t, space, owner); err != nil {
		return nil, fmt.Errorf("failed to provision tenant: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTenantProvisioned,
		TenantID: t.ID,
		ActorID:  ownerID,
		Resource: t.ID,
		Metadata: map[string]any{
			"business_type": t.BusinessType,
			"template_id":   t.TemplateID,
			"space_id":      space.ID,
		},
	})
	slog.InfoContext(ctx, "tenant provisioned", logger.TenantID(t.ID), logger.UserID(ownerID))

	return t, nil
}

// ProvisionFunc adapts Provision to the onboarding completion hook.
func (s *Service) ProvisionFunc() onboarding.ProvisionFunc {
	return func(ctx context.Context, ownerID string, data onboarding.Data) (string, error) {
		t, err := s.Provision(ctx, ownerID, data)
		if err != nil {
			return "", err
		}
		return t.ID, nil
	}
}

func (s *Service) GetTenant(ctx context.Context, id string) (*Tenant, error) {
	if id == "" {
		return nil, ErrTenantNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListOwnedTenants returns the tenants ownerID created.
func (s *Service) ListOwnedTenants(ctx context.Context, ownerID string) ([]*Tenant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) ListSpaces(ctx context.Context, tenantID string) ([]*Space, error) {
	return s.spaceRepo.ListByTenant(ctx, tenantID)
}

// HasAccess reports whether userID holds any role in tenantID.
func (s *Service) HasAccess(ctx context.Context, tenantID, userID string) (bool, error) {
	roles, err := s.roleRepo.GetUserRoles(ctx, tenantID, userID)
	if err != nil {
		return false, err
	}
	return len(roles) > 0, nil
}

func (s *Service) AssignRole(ctx context.Context, tenantID, userID, role string, grantedBy string) error {
	if !IsValidRole(role) {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	r := &TenantUserRole{
		ID:        id.NewUUIDv7(),
		TenantID:  tenantID,
		UserID:    userID,
		Role:      role,
		GrantedAt: s.now(),
		GrantedBy: grantedBy,
	}

	if err := s.roleRepo.AssignRole(ctx, r); err != nil {
		return err
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeRoleAssigned,
		TenantID: tenantID,
		ActorID:  grantedBy,
		Resource: role,
		Metadata: map[string]any{"user_id": userID},
	})

	return nil
}

func (s *Service) RevokeRole(ctx context.Context, tenantID, userID, role, revokedBy string) error {
	if !IsValidRole(role) {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	if err := s.roleRepo.RevokeRole(ctx, tenantID, userID, role); err != nil {
		return err
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeRoleRevoked,
		TenantID: tenantID,
		ActorID:  revokedBy,
		Resource: role,
		Metadata: map[string]any{"user_id": userID},
	})

	return nil
}

func (s *Service) GetUserRoles(ctx context.Context, tenantID, userID string) ([]*TenantUserRole, error) {
	return s.roleRepo.GetUserRoles(ctx, tenantID, userID)
}

func (s *Service) GetTenantUsers(ctx context.Context, tenantID string) ([]*TenantUserRole, error) {
	return s.roleRepo.GetTenantUsers(ctx, tenantID)
}
