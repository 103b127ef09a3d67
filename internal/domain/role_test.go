package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" chef ")
	require.NoError(t, err)
	assert.Equal(t, RoleChef, r)

	_, err = ParseRole("pompier")
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestRoleCapabilities(t *testing.T) {
	validators := map[Role]bool{RoleChef: true, RoleAdmin: true, RoleSuperAdmin: true}
	for _, r := range []Role{RoleUser, RoleManager, RoleChef, RoleAdmin, RoleSuperAdmin} {
		assert.Equal(t, validators[r], r.Can(CapValidateParticipation), r)
		assert.True(t, r.Can(CapExportData), r)
	}
	assert.False(t, RoleUser.Can(CapManageEvents))
	assert.True(t, RoleManager.Can(CapManageEvents))
	assert.False(t, RoleChef.Can(CapManagePersonnel))
}

func TestNewActor(t *testing.T) {
	_, err := NewActor("", "sdis-01", "USER")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	a, err := NewActor("u-1", "sdis-01", "admin")
	require.NoError(t, err)
	assert.True(t, a.Can(CapManagePersonnel))
}

func TestErrorKindAndCode(t *testing.T) {
	err := ErrInvalidEvent.WithDetail("title is required")
	assert.ErrorIs(t, err, ErrInvalidEvent)
	assert.Equal(t, "invalid_event", Code(err))
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "", Code(errors.New("boom")))
}
