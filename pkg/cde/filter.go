package cde

import "github.com/ChicagoDave/nestcde/pkg/hazard"

// Filter excludes specific hazard keys or scopes from a query, applied
// at the quadtree's node-visit level so excluded hazards never
// contribute edges or Entire tags to the traversal (spec §4.G). A nil
// *Filter excludes nothing.
type Filter struct {
	excludeKeys   map[hazard.HazardKey]struct{}
	excludeScopes map[string]struct{}
}

// NewFilter returns an empty filter that excludes nothing until
// configured.
func NewFilter() *Filter {
	return &Filter{}
}

// ExcludeKey adds a hazard key to the exclusion set and returns the
// filter for chaining.
func (f *Filter) ExcludeKey(key hazard.HazardKey) *Filter {
	if f.excludeKeys == nil {
		f.excludeKeys = make(map[hazard.HazardKey]struct{})
	}
	f.excludeKeys[key] = struct{}{}
	return f
}

// ExcludeScope adds a scope tag to the exclusion set and returns the
// filter for chaining.
func (f *Filter) ExcludeScope(scope string) *Filter {
	if f.excludeScopes == nil {
		f.excludeScopes = make(map[string]struct{})
	}
	f.excludeScopes[scope] = struct{}{}
	return f
}

// Allows reports whether a hazard with the given key and scope should
// be considered by a query. A nil filter allows everything.
func (f *Filter) Allows(key hazard.HazardKey, scope string) bool {
	if f == nil {
		return true
	}
	if _, excluded := f.excludeKeys[key]; excluded {
		return false
	}
	if _, excluded := f.excludeScopes[scope]; excluded {
		return false
	}
	return true
}
