package squad

import "fmt"

// Filter is a caller-supplied constraint narrowing the solver's search space.
// Filters are advisory: they never mutate players, and the solver composes
// them by conjunction.
type Filter interface {
	// Allows reports whether the filter consents to player p occupying role
	Allows(p Player, role RoleID) bool
	String() string
}

// PinFilter reserves a role for a single player. No other player may take the
// role, and the pinned player may not take any other role.
type PinFilter struct {
	Role       RoleID
	PlayerName string
}

func (f PinFilter) Allows(p Player, role RoleID) bool {
	if role == f.Role {
		return p.Name == f.PlayerName
	}
	return p.Name != f.PlayerName
}

func (f PinFilter) String() string {
	return fmt.Sprintf("pin %q to %s", f.PlayerName, f.Role)
}

// ExcludeFilter removes a player from consideration for every role
type ExcludeFilter struct {
	PlayerName string
}

func (f ExcludeFilter) Allows(p Player, _ RoleID) bool {
	return p.Name != f.PlayerName
}

func (f ExcludeFilter) String() string {
	return fmt.Sprintf("exclude %q", f.PlayerName)
}

// RoleExcludeFilter removes a player from consideration for one role only
type RoleExcludeFilter struct {
	Role       RoleID
	PlayerName string
}

func (f RoleExcludeFilter) Allows(p Player, role RoleID) bool {
	return role != f.Role || p.Name != f.PlayerName
}

func (f RoleExcludeFilter) String() string {
	return fmt.Sprintf("exclude %q from %s", f.PlayerName, f.Role)
}

// FootFilter adds a side requirement to a role on top of the catalogue's own
type FootFilter struct {
	Role RoleID
	Foot Footedness
}

func (f FootFilter) Allows(p Player, role RoleID) bool {
	return role != f.Role || p.Foot.Satisfies(f.Foot)
}

func (f FootFilter) String() string {
	return fmt.Sprintf("require %s foot for %s", f.Foot, f.Role)
}

// FilterSet composes filters by conjunction
type FilterSet []Filter

// Allows reports whether every filter consents to (p, role)
func (fs FilterSet) Allows(p Player, role RoleID) bool {
	for _, f := range fs {
		if !f.Allows(p, role) {
			return false
		}
	}
	return true
}

// PinFor returns the pin filter targeting role, if any
func (fs FilterSet) PinFor(role RoleID) (PinFilter, bool) {
	for _, f := range fs {
		if pin, ok := f.(PinFilter); ok && pin.Role == role {
			return pin, true
		}
	}
	return PinFilter{}, false
}
