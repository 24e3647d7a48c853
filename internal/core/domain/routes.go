package domain

import "sort"

// routeRoles maps each dashboard route to the set of roles allowed to view
// it. A route listed with an empty set, or not listed at all, is open to any
// authenticated identity.
var routeRoles = map[string][]string{
	"/":                  {},
	"/dashboard":         {},
	"/admin":             {RoleAdmin},
	"/manager":           {RoleAdmin, RoleManager},
	"/employee":          {RoleAdmin, RoleManager, RoleEmployee},
	"/clients":           {RoleAdmin, RoleManager},
	"/client-management": {RoleAdmin, RoleManager},
	"/appointment":       {},
	"/flats":             {RoleAdmin, RoleManager},
	"/flats/:flatId":     {RoleAdmin, RoleManager},
	"/clients/:clientId": {RoleAdmin, RoleManager},
	"/finances":          {RoleAdmin, RoleManager},
	"/reports":           {RoleAdmin, RoleManager},
	"/settings":          {RoleAdmin},
}

// publicRoutes need no identity at all.
var publicRoutes = map[string]struct{}{
	"/login":    {},
	"/register": {},
	"/403":      {},
}

// IsPublicRoute reports whether path is reachable without authentication.
func IsPublicRoute(path string) bool {
	_, ok := publicRoutes[path]
	return ok
}

// AllowedRoles returns the roles permitted on path. An empty slice means any
// authenticated identity may view it. The function is total: unknown paths
// behave like unlisted routes.
func AllowedRoles(path string) []string {
	return routeRoles[path]
}

// CanAccess is the route guard predicate: role must be non-empty (fail
// closed when the role claim never loaded) and, when the route lists roles,
// must be one of them.
func CanAccess(role, path string) bool {
	if IsPublicRoute(path) {
		return true
	}
	if role == "" {
		return false
	}
	allowed := AllowedRoles(path)
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// AccessibleRoutes returns the sorted list of guarded routes role may view,
// used to build role-gated navigation.
func AccessibleRoutes(role string) []string {
	var out []string
	for path := range routeRoles {
		if CanAccess(role, path) {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}
