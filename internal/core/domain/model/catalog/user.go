package catalog

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Contact groups the optional contact details of a user.
type Contact struct {
	Email  string
	Phone  string
	Avatar string
}

type User struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	name    string
	role    kernel.Role
	contact Contact
	guard   guard.ConstructorGuard
}

func NewUser(id kernel.UUID, name string, role kernel.Role, contact Contact) (User, error) {
	u := User{contact: contact, guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), u.setName(name), u.setRole(role)); err != nil {
		return User{}, err
	}

	u.id = id
	return u, nil
}

func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u User) ID() kernel.UUID {
	return u.id
}

func (u User) Name() string {
	return u.name
}

func (u User) Role() kernel.Role {
	return u.role
}

func (u User) Contact() Contact {
	return u.contact
}

// Actor is the user acting under their own role and id.
func (u User) Actor() kernel.Actor {
	actor, _ := kernel.NewActor(u.role, u.id)
	return actor
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("user name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
