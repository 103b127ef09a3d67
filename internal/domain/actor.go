package domain

import "strings"

// Actor is the already-authenticated identity an operation runs on behalf of.
// It is passed explicitly to every use case; nothing reads it from ambient state.
type Actor struct {
	ID       string
	TenantID string
	Role     Role
}

// NewActor builds an Actor from raw identity claims.
func NewActor(id, tenantID, role string) (Actor, error) {
	r, err := ParseRole(role)
	if err != nil {
		return Actor{}, err
	}
	a := Actor{ID: strings.TrimSpace(id), TenantID: strings.TrimSpace(tenantID), Role: r}
	if err := a.Validate(); err != nil {
		return Actor{}, err
	}
	return a, nil
}

// Validate fails with ErrUnauthenticated when the identity triple is incomplete.
func (a Actor) Validate() error {
	if a.ID == "" || a.TenantID == "" || a.Role == "" {
		return ErrUnauthenticated
	}
	return nil
}

func (a Actor) Can(c Capability) bool {
	return a.Role.Can(c)
}
