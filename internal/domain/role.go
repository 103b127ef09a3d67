package domain

import "strings"

// Role is the closed set of roles an actor can hold inside a tenant.
type Role string

const (
	RoleUser       Role = "USER"
	RoleManager    Role = "MANAGER"
	RoleChef       Role = "CHEF"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Capability is a permission granted to one or more roles.
type Capability string

const (
	CapValidateParticipation Capability = "validate_participation"
	CapManageEvents          Capability = "manage_events"
	CapManagePersonnel       Capability = "manage_personnel"
	CapExportData            Capability = "export_data"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleUser: {
		CapExportData: true,
	},
	RoleManager: {
		CapManageEvents: true,
		CapExportData:   true,
	},
	RoleChef: {
		CapValidateParticipation: true,
		CapManageEvents:          true,
		CapExportData:            true,
	},
	RoleAdmin: {
		CapValidateParticipation: true,
		CapManageEvents:          true,
		CapManagePersonnel:       true,
		CapExportData:            true,
	},
	RoleSuperAdmin: {
		CapValidateParticipation: true,
		CapManageEvents:          true,
		CapManagePersonnel:       true,
		CapExportData:            true,
	},
}

// ParseRole normalizes s and returns the matching Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roleCapabilities[r]; !ok {
		return "", ErrInvalidRole.WithDetail(s)
	}
	return r, nil
}

// Can reports whether the role grants c.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}
