package authzmock

// Authorizer is a set-backed capability check for tests.
type Authorizer struct {
	Permissions map[string]bool
	Roles       map[string]bool
}

// AllowAll grants every permission and role.
func AllowAll() *Authorizer { return &Authorizer{} }

// Allow grants exactly the named permissions.
func Allow(perms ...string) *Authorizer {
	m := make(map[string]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return &Authorizer{Permissions: m}
}

func (a *Authorizer) HasPermission(name string) bool {
	if a.Permissions == nil {
		return true
	}
	return a.Permissions[name]
}

func (a *Authorizer) HasRole(name string) bool {
	if a.Roles == nil {
		return true
	}
	return a.Roles[name]
}
