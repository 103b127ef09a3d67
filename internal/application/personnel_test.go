package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

func TestUpsertUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		actor domain.Role
		user  entities.User
		err   error
	}{
		{
			name:  "admin",
			actor: domain.RoleAdmin,
			user:  entities.User{ID: " u-1 ", FirstName: "Jeanne", LastName: "Roux", Email: "jeanne.roux@sdis01.fr"},
		},
		{
			name:  "chef cannot manage personnel",
			actor: domain.RoleChef,
			user:  entities.User{ID: "u-1", LastName: "Roux"},
			err:   domain.ErrForbidden,
		},
		{
			name:  "missing last name",
			actor: domain.RoleAdmin,
			user:  entities.User{ID: "u-1", FirstName: "Jeanne"},
			err:   domain.ErrInvalidPersonnel,
		},
		{
			name:  "invalid email",
			actor: domain.RoleAdmin,
			user:  entities.User{ID: "u-1", LastName: "Roux", Email: "jeanne"},
			err:   domain.ErrInvalidPersonnel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			got, err := f.personnel.UpsertUser(ctx, actor(t, "admin", tt.actor), tt.user)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", got.ID)
			assert.Equal(t, tenant, got.TenantID)
		})
	}
}

func TestUpsertUserTenantComesFromActor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.personnel.UpsertUser(ctx, actorIn(t, "admin", "sdis-02", domain.RoleAdmin),
		entities.User{ID: "u-1", TenantID: tenant, LastName: "Roux"})
	require.NoError(t, err)

	_, err = f.store.Repos().Users.FindByID(ctx, tenant, "u-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	saved, err := f.store.Repos().Users.FindByID(ctx, "sdis-02", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Roux", saved.LastName)
}
