package models

import "strings"

// Role is the canonical actor role. Free-text role values from clients are
// normalized once at the boundary; business code only compares Role values.
type Role string

const (
	RoleUser  Role = "User"
	RoleAgent Role = "Agent"
	RoleAdmin Role = "Admin"
	// RoleAll is only valid as a notification recipient role.
	RoleAll Role = "All"
)

// NormalizeRole canonicalizes a raw role string ("agent", "ADMIN") to its
// Titlecase form. Empty or unrecognized values normalize to RoleUser, matching
// the permissive handling of unknown roles on the read paths.
func NormalizeRole(raw string) Role {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RoleUser
	}
	title := strings.ToUpper(raw[:1]) + strings.ToLower(raw[1:])
	switch Role(title) {
	case RoleAgent, RoleAdmin, RoleAll:
		return Role(title)
	default:
		return RoleUser
	}
}
