package models

import "strings"

// UserStatus represents the lifecycle status of a stored user
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// Derived role names appended by the role transform
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// UserRecord is the typed row decoded at the storage boundary. Roles is
// stored comma-joined, the way the upstream schema keeps it.
type UserRecord struct {
	ID             int64    `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Roles          string   `json:"roles,omitempty"`
	Permissions    []string `json:"permissions,omitempty"`
	TotalPurchases int      `json:"total_purchases,omitempty"`
	Status         string   `json:"status" validate:"required"`
}

// IsActive reports whether the record's status field marks it active
func (r *UserRecord) IsActive() bool {
	return UserStatus(r.Status) == StatusActive
}

// HasPermission reports whether the record carries the given permission
func (r *UserRecord) HasPermission(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// BaseRoles splits the comma-joined roles field into a slice, dropping
// empty segments so "a,,b" and "" behave sensibly.
func (r *UserRecord) BaseRoles() []string {
	var roles []string
	for _, role := range strings.Split(r.Roles, ",") {
		role = strings.TrimSpace(role)
		if role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}

// User represents a user after the role-derivation transform. Roles keeps
// the base roles first, then derived roles, in derivation order.
type User struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// HasRole reports whether the user holds the given role
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
