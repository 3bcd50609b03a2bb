package models

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"agent", RoleAgent},
		{"Agent", RoleAgent},
		{"AGENT", RoleAgent},
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"user", RoleUser},
		{"User", RoleUser},
		{"all", RoleAll},
		{"", RoleUser},
		{"  agent  ", RoleAgent},
		{"vendor", RoleUser},
		{"superadmin", RoleUser},
	}

	for _, tc := range cases {
		if got := NormalizeRole(tc.raw); got != tc.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
