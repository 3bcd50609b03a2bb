package models

// AuthContext carries the caller identity established at the request
// boundary. The platform trusts client-supplied headers; swapping in a real
// authentication mechanism only changes how this struct gets populated.
type AuthContext struct {
	Role    Role
	AgentID string
	UserID  string
	Phone   string
}

// IsAdmin reports whether the caller holds the admin role.
func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}
