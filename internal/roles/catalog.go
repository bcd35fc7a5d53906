// Package roles holds the static role catalogue: the authoritative mapping
// between player categories and role identifiers, the per-role ability weight
// profiles, and the named formation presets. The catalogue is loaded once from
// an embedded document and is read-only for the process lifetime.
package roles

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gaffertool/gaffer/internal/squad"
)

//go:embed profiles.yaml
var profilesYAML []byte

// Role is a named position with a category, an ability-weight profile, and an
// optional side requirement for foot-bound roles.
type Role struct {
	ID       squad.RoleID              `yaml:"id"`
	Name     string                    `yaml:"name"`
	Category squad.PlayerCategory      `yaml:"category"`
	Foot     squad.Footedness          `yaml:"foot"`
	Weights  map[squad.Ability]float64 `yaml:"weights"`
}

type catalogDocument struct {
	Roles      []Role                    `yaml:"roles"`
	Formations map[string][]squad.RoleID `yaml:"formations"`
}

var (
	catalog      []Role
	catalogIndex map[squad.RoleID]int
	byCategory   map[squad.PlayerCategory][]squad.RoleID
	formations   map[string][]squad.RoleID
)

func init() {
	var doc catalogDocument
	if err := yaml.Unmarshal(profilesYAML, &doc); err != nil {
		panic(fmt.Sprintf("roles: embedded catalogue is malformed: %v", err))
	}

	catalog = doc.Roles
	formations = doc.Formations
	catalogIndex = make(map[squad.RoleID]int, len(catalog))
	byCategory = make(map[squad.PlayerCategory][]squad.RoleID)

	for i, role := range catalog {
		if _, dup := catalogIndex[role.ID]; dup {
			panic(fmt.Sprintf("roles: duplicate role %s in catalogue", role.ID))
		}
		if !squad.IsValidCategory(role.Category) {
			panic(fmt.Sprintf("roles: role %s has unknown category %q", role.ID, role.Category))
		}
		if role.Foot != "" && role.Foot != squad.LeftFooted && role.Foot != squad.RightFooted {
			panic(fmt.Sprintf("roles: role %s has invalid foot requirement %q", role.ID, role.Foot))
		}
		if len(role.Weights) == 0 {
			panic(fmt.Sprintf("roles: role %s has no weight profile", role.ID))
		}
		for ability, weight := range role.Weights {
			if !squad.IsValidAbility(ability) {
				panic(fmt.Sprintf("roles: role %s weights unknown ability %q", role.ID, ability))
			}
			if weight <= 0 {
				panic(fmt.Sprintf("roles: role %s has non-positive weight for %s", role.ID, ability))
			}
		}
		catalogIndex[role.ID] = i
		byCategory[role.Category] = append(byCategory[role.Category], role.ID)
	}

	for name, roleIDs := range formations {
		seen := make(map[squad.RoleID]bool, len(roleIDs))
		for _, id := range roleIDs {
			if _, ok := catalogIndex[id]; !ok {
				panic(fmt.Sprintf("roles: formation %s names unknown role %s", name, id))
			}
			if seen[id] {
				panic(fmt.Sprintf("roles: formation %s repeats role %s", name, id))
			}
			seen[id] = true
		}
	}
}

// Catalog returns all roles in catalogue order
func Catalog() []Role {
	out := make([]Role, len(catalog))
	copy(out, catalog)
	return out
}

// ValidRoles returns every role identifier in catalogue order
func ValidRoles() []squad.RoleID {
	out := make([]squad.RoleID, len(catalog))
	for i, role := range catalog {
		out[i] = role.ID
	}
	return out
}

// Lookup returns the catalogue entry for id
func Lookup(id squad.RoleID) (Role, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Role{}, false
	}
	return catalog[i], true
}

// IsValidRole reports whether id is a member of the role catalogue
func IsValidRole(id squad.RoleID) bool {
	_, ok := catalogIndex[id]
	return ok
}

// IndexOf returns the catalogue position of id, used for stable output
// ordering and tie-breaking. Unknown roles sort last.
func IndexOf(id squad.RoleID) int {
	if i, ok := catalogIndex[id]; ok {
		return i
	}
	return len(catalog)
}

// RolesForCategory returns the role identifiers a player of category c may
// occupy, in catalogue order. Unknown categories yield an empty set; callers
// validate c first.
func RolesForCategory(c squad.PlayerCategory) []squad.RoleID {
	ids := byCategory[c]
	out := make([]squad.RoleID, len(ids))
	copy(out, ids)
	return out
}

// RoleBelongsToCategory reports whether role r is occupiable by category c
func RoleBelongsToCategory(r squad.RoleID, c squad.PlayerCategory) bool {
	role, ok := Lookup(r)
	return ok && role.Category == c
}

// FormationRoles returns the role selection for a named formation preset
func FormationRoles(name string) ([]squad.RoleID, bool) {
	ids, ok := formations[name]
	if !ok {
		return nil, false
	}
	out := make([]squad.RoleID, len(ids))
	copy(out, ids)
	return out, true
}

// FormationNames returns the available formation preset names, sorted
func FormationNames() []string {
	names := make([]string, 0, len(formations))
	for name := range formations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
