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

//go:build integration
// +build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ruoomkr/platform/internal/id"
	"github.com/ruoomkr/platform/internal/session"
	"github.com/ruoomkr/platform/internal/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *DB {
	t.Helper()
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "ruoom_dev_password"
	}

	ctx := context.Background()
	db, err := New(ctx, Config{
		Host:         "localhost",
		Port:         "5432",
		User:         "ruoom",
		Password:     password,
		Database:     "ruoom",
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to database: %v", err)
	}
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx, InitialSchema))
	return db
}

func newTenantFixture(ownerID string) (*tenant.Tenant, *tenant.Space, *tenant.TenantUserRole) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	tn := &tenant.Tenant{
		ID:               id.NewUUIDv7(),
		Name:             "루움 필라테스",
		Status:           tenant.StatusActive,
		BusinessType:     "pilates",
		BusinessCategory: "reformer",
		Description:      "기구 필라테스 전문 스튜디오로 1:1 레슨을 제공합니다.",
		Address:          "부산광역시 해운대구 센텀중앙로 79",
		Phone:            "010-2222-3333",
		Email:            "pilates@ruoom.kr",
		TemplateID:       "zen-wellness",
		OwnerID:          ownerID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	sp := &tenant.Space{
		ID:        id.NewUUIDv7(),
		TenantID:  tn.ID,
		Name:      "기구실 1",
		SpaceType: "reformer_room",
		Capacity:  6,
		Amenities: []string{"reformer", "shower"},
		CreatedAt: now,
	}
	owner := &tenant.TenantUserRole{
		ID:        id.NewUUIDv7(),
		TenantID:  tn.ID,
		UserID:    ownerID,
		Role:      tenant.RoleTenantOwner,
		GrantedBy: ownerID,
	}
	return tn, sp, owner
}

// TestPurpose: Validates that provisioning writes tenant, space and owner role atomically and reads back intact.
// Scope: Database Integration Test
// Expected: All three rows exist after Provision; a duplicate owner role rolls the whole transaction back.
// Test Case ID: DB-01
func TestTenantRepository_Provision(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	tenants := NewTenantRepository(db)
	spaces := NewSpaceRepository(db)
	roles := NewTenantRoleRepository(db)

	ownerID := id.NewUUIDv7()
	tn, sp, owner := newTenantFixture(ownerID)
	require.NoError(t, tenants.Provision(ctx, tn, sp, owner))

	got, err := tenants.GetByID(ctx, tn.ID)
	require.NoError(t, err)
	assert.Equal(t, tn.Name, got.Name)
	assert.Equal(t, "", got.Website)

	list, err := spaces.ListByTenant(ctx, tn.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"reformer", "shower"}, list[0].Amenities)

	userRoles, err := roles.GetUserRoles(ctx, tn.ID, ownerID)
	require.NoError(t, err)
	require.Len(t, userRoles, 1)
	assert.Equal(t, tenant.RoleTenantOwner, userRoles[0].Role)

	owned, err := tenants.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	dup := &tenant.TenantUserRole{ID: id.NewUUIDv7(), TenantID: tn.ID, UserID: ownerID, Role: tenant.RoleTenantOwner}
	assert.ErrorIs(t, roles.AssignRole(ctx, dup), tenant.ErrRoleAlreadyExists)

	// a failing role insert must not leave a half-provisioned tenant behind
	tn2, sp2, _ := newTenantFixture(ownerID)
	err = tenants.Provision(ctx, tn2, sp2, &tenant.TenantUserRole{ID: owner.ID, TenantID: tn2.ID, UserID: ownerID, Role: tenant.RoleTenantOwner})
	require.Error(t, err)
	_, err = tenants.GetByID(ctx, tn2.ID)
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
}

func TestTenantRepository_GetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	_, err := NewTenantRepository(db).GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	svc := session.NewService(repo, time.Hour, 30*time.Minute)
	sess, err := svc.Create(ctx, "", id.NewUUIDv7(), "owner@ruoom.kr", "127.0.0.1", "integration")
	require.NoError(t, err)

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@ruoom.kr", got.Email)
	assert.Equal(t, "", got.TenantID)

	require.NoError(t, svc.Refresh(ctx, sess.ID))
	require.NoError(t, svc.Destroy(ctx, sess.ID))
	_, err = svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
