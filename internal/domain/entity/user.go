// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// PermissionAll grants every permission.
const PermissionAll = "*"

// User is the signed-in identity as reported by the upstream API.
// It is owned by the Session and replaced wholesale, never patched.
type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	IsEmailVerified bool     `json:"isEmailVerified"`
	Roles           Roles    `json:"roles"`
	Permissions     []string `json:"permissions,omitempty"`
}

// Clone returns a deep copy so callers can never mutate store-owned state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	cloned := *u
	cloned.Roles = slices.Clone(u.Roles)
	cloned.Permissions = slices.Clone(u.Permissions)

	return &cloned
}

// Credentials is the login form.
type Credentials struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
	RememberMe      bool   `json:"rememberMe"`
}

// Registration is the sign-up form.
type Registration struct {
	Name     string `json:"name" validate:"required,max=120"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}
