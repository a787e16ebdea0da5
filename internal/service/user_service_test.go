package service

import (
	"context"
	"testing"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newTestStore(), logger.NoOp{})

	_, err := svc.Create(ctx, CreateUserParams{Email: "agent@company.com", Password: "secret", Role: entity.RoleAgent})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserParams{Email: "agent@company.com", Password: "other", Role: entity.RoleAgent})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateUserBuildsNameFromParts(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newTestStore(), logger.NoOp{})

	user, err := svc.Create(ctx, CreateUserParams{
		Email:     "carlos@company.com",
		Password:  "secret",
		Role:      entity.RoleAgent,
		FirstName: "Carlos",
		LastName:  "Reyes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carlos Reyes", user.Name)
}

func TestCreateUserValidatesRole(t *testing.T) {
	svc := NewUserService(newTestStore(), logger.NoOp{})
	_, err := svc.Create(context.Background(), CreateUserParams{Email: "x@company.com", Password: "secret", Role: "superuser"})
	assert.Error(t, err)
}

func TestUpdateUserNeverChangesRole(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newTestStore(), logger.NoOp{})

	user, err := svc.Create(ctx, CreateUserParams{Email: "agent@company.com", Password: "secret", Role: entity.RoleAgent, Name: "Agent"})
	require.NoError(t, err)

	newName := "Renamed Agent"
	updated, err := svc.Update(ctx, user.ID, UpdateUserParams{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Agent", updated.Name)
	assert.Equal(t, entity.RoleAgent, updated.Role)

	// An empty password pointer leaves the stored password alone.
	empty := ""
	updated, err = svc.Update(ctx, user.ID, UpdateUserParams{Password: &empty})
	require.NoError(t, err)
	assert.Equal(t, "secret", updated.Password)
}

func TestSeedDefaultsOnlyOnEmptyCollection(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newTestStore(), logger.NoOp{})

	seeded, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	admin, err := svc.ByEmail(ctx, "admin@company.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.Len(t, svc.Agents(ctx), 3)

	// A second run must not duplicate accounts.
	seeded, err = svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, svc.Agents(ctx), 3)
}

func TestResolveAgentToleratesDanglingReference(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()

	agent, err := ResolveAgent(ctx, st, "user_gone")
	require.NoError(t, err)
	assert.Nil(t, agent)

	agent, err = ResolveAgent(ctx, st, "")
	require.NoError(t, err)
	assert.Nil(t, agent)
}
