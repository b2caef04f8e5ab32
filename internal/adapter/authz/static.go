// Package authz provides the capability-check collaborator. The static
// implementation reads its grants from configuration; a session-backed
// one can replace it without touching the usecases.
package authz

import "strings"

type Static struct {
	perms map[string]bool
	roles map[string]bool
}

// NewStatic builds an authorizer from comma-separated grant lists.
// An empty permission list grants everything (single-tenant deployments
// with auth handled upstream).
func NewStatic(perms, roles string) *Static {
	return &Static{perms: toSet(perms), roles: toSet(roles)}
}

func toSet(csv string) map[string]bool {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil
	}
	m := map[string]bool{}
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			m[p] = true
		}
	}
	return m
}

func (s *Static) HasPermission(name string) bool {
	if s.perms == nil {
		return true
	}
	return s.perms[name]
}

func (s *Static) HasRole(name string) bool {
	if s.roles == nil {
		return true
	}
	return s.roles[name]
}
