package user

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// ErrNotFound is returned when a user ID does not correspond to an account.
var ErrNotFound = errors.New("user not found")

type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	RollNo string    `json:"roll_no,omitempty"`
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	switch u.Role {
	case "", RoleStudent, RoleFaculty, RoleAdmin:
	default:
		return fmt.Errorf("unknown role %q", u.Role)
	}
	return nil
}
