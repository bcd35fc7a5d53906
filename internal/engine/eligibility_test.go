package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaffertool/gaffer/internal/squad"
)

func TestIsPlayerEligibleForRole(t *testing.T) {
	midfielder := squad.Player{Name: "Alice", Category: squad.CategoryMidfielder, Foot: squad.RightFooted}
	leftBack := squad.Player{Name: "Bob", Category: squad.CategoryDefender, Foot: squad.LeftFooted}
	bothFooted := squad.Player{Name: "Carol", Category: squad.CategoryDefender, Foot: squad.BothFooted}

	// Category gates the role
	assert.True(t, IsPlayerEligibleForRole(midfielder, "CM", nil))
	assert.False(t, IsPlayerEligibleForRole(midfielder, "CD", nil))
	assert.False(t, IsPlayerEligibleForRole(leftBack, "CM", nil))

	// Side requirements
	assert.True(t, IsPlayerEligibleForRole(leftBack, "WB-L", nil))
	assert.False(t, IsPlayerEligibleForRole(leftBack, "WB-R", nil))

	// Both-footed satisfies any side requirement
	assert.True(t, IsPlayerEligibleForRole(bothFooted, "WB-L", nil))
	assert.True(t, IsPlayerEligibleForRole(bothFooted, "WB-R", nil))

	// Unknown roles never match
	assert.False(t, IsPlayerEligibleForRole(midfielder, "XYZ", nil))
}

func TestIsPlayerEligibleForRoleWithFilters(t *testing.T) {
	alice := squad.Player{Name: "Alice", Category: squad.CategoryMidfielder, Foot: squad.RightFooted}
	bob := squad.Player{Name: "Bob", Category: squad.CategoryMidfielder, Foot: squad.RightFooted}

	filters := squad.FilterSet{squad.PinFilter{Role: "CM", PlayerName: "Alice"}}

	assert.True(t, IsPlayerEligibleForRole(alice, "CM", filters))
	assert.False(t, IsPlayerEligibleForRole(bob, "CM", filters))
	// The pinned player is withheld from other roles
	assert.False(t, IsPlayerEligibleForRole(alice, "BBM", filters))
	assert.True(t, IsPlayerEligibleForRole(bob, "BBM", filters))

	excluded := squad.FilterSet{squad.ExcludeFilter{PlayerName: "Bob"}}
	assert.False(t, IsPlayerEligibleForRole(bob, "CM", excluded))
}
