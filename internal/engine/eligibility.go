package engine

import (
	"github.com/gaffertool/gaffer/internal/roles"
	"github.com/gaffertool/gaffer/internal/squad"
)

// IsPlayerEligibleForRole reports whether a player may occupy a role: the role
// must belong to the player's category, the role's side requirement must be
// compatible with the player's foot, and every active filter must consent.
func IsPlayerEligibleForRole(p squad.Player, roleID squad.RoleID, filters squad.FilterSet) bool {
	role, ok := roles.Lookup(roleID)
	if !ok {
		return false
	}
	if role.Category != p.Category {
		return false
	}
	if !p.Foot.Satisfies(role.Foot) {
		return false
	}
	return filters.Allows(p, roleID)
}

// eligibleCount returns how many pool players are eligible for a role
func eligibleCount(players []squad.Player, roleID squad.RoleID, filters squad.FilterSet) int {
	count := 0
	for _, p := range players {
		if IsPlayerEligibleForRole(p, roleID, filters) {
			count++
		}
	}
	return count
}
