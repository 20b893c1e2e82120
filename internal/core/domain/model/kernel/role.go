package kernel

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Role is the capacity in which a caller acts on the marketplace.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleStore
	RoleDriver
	RoleAdmin
)

func getRoleNames() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleStore:    "store",
		RoleDriver:   "driver",
		RoleAdmin:    "admin",
	}
}

// ParseRole accepts the wire names customer, store, driver and admin.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleNames() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := getRoleNames()[r]; ok {
		return name
	}
	return "unknown"
}

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the declared identity behind a request: a role and the id it acts under.
// Store actors use the store id, everyone else their user id.
type Actor struct {
	role  Role
	id    UUID
	guard guard.ConstructorGuard
}

func NewActor(role Role, id UUID) (Actor, error) {
	if err := errors.Join(role.Validate(), id.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Is(role Role) bool {
	return a.role == role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

func (a Actor) String() string {
	return a.role.String() + ":" + a.id.String()
}
