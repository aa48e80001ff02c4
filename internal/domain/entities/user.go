package entities

import (
	"fmt"
	"strings"
)

// Role tags what a user is allowed to do. Roles are not authenticated.
type Role string

const (
	RoleDriver   Role = "driver"
	RoleDispatch Role = "dispatch"
	RoleOps      Role = "ops"
)

// ParseRole parses a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	switch role {
	case RoleDriver, RoleDispatch, RoleOps:
		return role, nil
	}
	return "", fmt.Errorf("invalid role: %q (valid: driver, dispatch, ops)", s)
}

// User is a demo identity.
type User struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// DemoUsers are the built-in identities used for role login.
var DemoUsers = []User{
	{ID: "u1", Role: RoleDriver, Name: "김기사"},
	{ID: "u2", Role: RoleDriver, Name: "박화물"},
	{ID: "u3", Role: RoleDispatch, Name: "이배차"},
	{ID: "ops1", Role: RoleOps, Name: "최운영"},
}

// UserForRole returns the first demo user with the given role, or a
// synthesized demo user when none exists.
func UserForRole(role Role) User {
	for _, u := range DemoUsers {
		if u.Role == role {
			return u
		}
	}
	return User{ID: "demo-" + string(role), Role: role, Name: "Demo " + string(role)}
}

// FindUser looks up a demo user by ID.
func FindUser(id string) (User, bool) {
	for _, u := range DemoUsers {
		if u.ID == id {
			return u, true
		}
	}
	if role, err := ParseRole(strings.TrimPrefix(id, "demo-")); err == nil && strings.HasPrefix(id, "demo-") {
		return UserForRole(role), true
	}
	return User{}, false
}
