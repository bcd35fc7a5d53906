package engine

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaffertool/gaffer/internal/roles"
	"github.com/gaffertool/gaffer/internal/squad"
)

func midfielder(name string, base float64, overrides map[squad.Ability]float64) squad.Player {
	return squad.Player{
		Name:     name,
		Category: squad.CategoryMidfielder,
		Foot:     squad.RightFooted,
		Ratings:  uniformRatings(base, overrides),
	}
}

func defender(name string, foot squad.Footedness, base float64) squad.Player {
	return squad.Player{
		Name:     name,
		Category: squad.CategoryDefender,
		Foot:     foot,
		Ratings:  uniformRatings(base, nil),
	}
}

func assignedRole(t *testing.T, team *squad.Team, name string) squad.RoleID {
	t.Helper()
	for _, a := range team.Assignments {
		if a.Player.Name == name {
			return a.Role
		}
	}
	t.Fatalf("player %s not assigned", name)
	return ""
}

func TestSolveByCategory(t *testing.T) {
	players := []squad.Player{
		midfielder("Alice", 12, nil),
		defender("Bob", squad.RightFooted, 11),
	}

	team, err := FindOptimalAssignments(players, []squad.RoleID{"BBM", "CD"})
	require.NoError(t, err)
	require.Len(t, team.Assignments, 2)

	assert.Equal(t, squad.RoleID("BBM"), assignedRole(t, team, "Alice"))
	assert.Equal(t, squad.RoleID("CD"), assignedRole(t, team, "Bob"))
}

func TestSolveEmptyRolesYieldsEmptyTeam(t *testing.T) {
	team, err := FindOptimalAssignments([]squad.Player{midfielder("Alice", 10, nil)}, nil)
	require.NoError(t, err)
	assert.Empty(t, team.Assignments)
	assert.Zero(t, team.TotalScore)
}

func TestSolveRejectsDuplicateRoles(t *testing.T) {
	players := []squad.Player{defender("Ann", squad.RightFooted, 10), defender("Ben", squad.RightFooted, 9)}

	_, err := FindOptimalAssignments(players, []squad.RoleID{"CD", "CD"})
	require.Error(t, err)
	assert.Equal(t, squad.ErrCodeValidation, squad.CodeOf(err))
}

func TestSolveUnfillableRole(t *testing.T) {
	players := []squad.Player{defender("Ann", squad.LeftFooted, 12)}

	_, err := FindOptimalAssignments(players, []squad.RoleID{"WB-R"})
	require.Error(t, err)
	assert.Equal(t, squad.ErrCodeAssignment, squad.CodeOf(err))

	var se *squad.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []squad.RoleID{"WB-R"}, se.Roles)
}

func TestSolveMoreRolesThanPlayers(t *testing.T) {
	players := []squad.Player{midfielder("Alice", 10, nil), midfielder("Bob", 9, nil)}

	_, err := FindOptimalAssignments(players, []squad.RoleID{"CM", "BBM", "DM"})
	require.Error(t, err)
	assert.Equal(t, squad.ErrCodeAssignment, squad.CodeOf(err))
}

func TestSolveBothFootedFillsEitherSide(t *testing.T) {
	players := []squad.Player{defender("Ann", squad.BothFooted, 12)}

	for _, role := range []squad.RoleID{"WB-L", "WB-R"} {
		team, err := FindOptimalAssignments(players, []squad.RoleID{role})
		require.NoError(t, err)
		assert.Equal(t, role, assignedRole(t, team, "Ann"))
	}
}

// The solver must not take the locally best pair when a better global matching
// exists. Xavier scores highest at CM, but putting him there strands Yusuf on
// a poor BBM score; the optimum swaps them.
func TestSolveAvoidsGreedyTrap(t *testing.T) {
	stamina := map[squad.Ability]float64{squad.AbilityStamina: 5, squad.AbilityWorkRate: 5}
	noEngine := map[squad.Ability]float64{squad.AbilityStamina: 0, squad.AbilityWorkRate: 0}

	xavier := midfielder("Xavier", 12, stamina)
	yusuf := midfielder("Yusuf", 13, noEngine)

	cm, _ := roles.Lookup("CM")
	bbm, _ := roles.Lookup("BBM")
	require.Greater(t, AssignmentScore(xavier, cm), AssignmentScore(yusuf, cm),
		"trap requires Xavier to be the greedy pick for CM")

	team, err := FindOptimalAssignments([]squad.Player{xavier, yusuf}, []squad.RoleID{"CM", "BBM"})
	require.NoError(t, err)

	assert.Equal(t, squad.RoleID("BBM"), assignedRole(t, team, "Xavier"))
	assert.Equal(t, squad.RoleID("CM"), assignedRole(t, team, "Yusuf"))

	greedyTotal := AssignmentScore(xavier, cm) + AssignmentScore(yusuf, bbm)
	assert.Greater(t, team.TotalScore, greedyTotal)
}

func TestSolvePinOverridesHigherScore(t *testing.T) {
	strong := midfielder("Alice", 15, nil)
	weak := midfielder("Bob", 8, nil)

	filters := squad.FilterSet{squad.PinFilter{Role: "CM", PlayerName: "Bob"}}
	team, err := FindOptimalAssignmentsWithFilters([]squad.Player{strong, weak}, []squad.RoleID{"CM"}, filters)
	require.NoError(t, err)

	assert.Equal(t, squad.RoleID("CM"), assignedRole(t, team, "Bob"))
}

func TestSolveInfeasiblePinIsFilterConflict(t *testing.T) {
	players := []squad.Player{
		defender("Ann", squad.RightFooted, 12),
		midfielder("Alice", 11, nil),
	}

	// Ann is a defender; pinning her to CM can never be satisfied
	filters := squad.FilterSet{squad.PinFilter{Role: "CM", PlayerName: "Ann"}}
	_, err := FindOptimalAssignmentsWithFilters(players, []squad.RoleID{"CM"}, filters)
	require.Error(t, err)
	assert.Equal(t, squad.ErrCodeFilterConflict, squad.CodeOf(err))

	var se *squad.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Ann", se.Player)
	assert.Equal(t, []squad.RoleID{"CM"}, se.Roles)
}

func TestSolveConflictingPinsAreInfeasible(t *testing.T) {
	players := []squad.Player{midfielder("Alice", 12, nil), midfielder("Bob", 11, nil)}

	// Both roles demand Alice; she can only fill one
	filters := squad.FilterSet{
		squad.PinFilter{Role: "CM", PlayerName: "Alice"},
		squad.PinFilter{Role: "BBM", PlayerName: "Alice"},
	}
	_, err := FindOptimalAssignmentsWithFilters(players, []squad.RoleID{"CM", "BBM"}, filters)
	require.Error(t, err)
	assert.Equal(t, squad.ErrCodeAssignment, squad.CodeOf(err))
}

// A forbidden pair must stay unattractive no matter how large the legitimate
// scores grow. Ana dominates AM, but she is the only player who can cover
// WM-L; the matcher must not trade feasibility for her AM score.
func TestSolveExtremeScoresStayFeasible(t *testing.T) {
	ana := squad.Player{
		Name:     "Ana",
		Category: squad.CategoryMidfielder,
		Foot:     squad.BothFooted,
		Ratings: map[squad.Ability]float64{
			squad.AbilityVision:  1e18,
			squad.AbilityPassing: 1e18,
		},
	}
	ben := midfielder("Ben", 9, nil)

	team, err := FindOptimalAssignments([]squad.Player{ana, ben}, []squad.RoleID{"WM-L", "AM"})
	require.NoError(t, err)

	assert.Equal(t, squad.RoleID("WM-L"), assignedRole(t, team, "Ana"))
	assert.Equal(t, squad.RoleID("AM"), assignedRole(t, team, "Ben"))
}

func TestSolveExcludeFilter(t *testing.T) {
	strong := midfielder("Alice", 15, nil)
	weak := midfielder("Bob", 8, nil)

	filters := squad.FilterSet{squad.ExcludeFilter{PlayerName: "Alice"}}
	team, err := FindOptimalAssignmentsWithFilters([]squad.Player{strong, weak}, []squad.RoleID{"CM"}, filters)
	require.NoError(t, err)
	assert.Equal(t, squad.RoleID("CM"), assignedRole(t, team, "Bob"))
}

func TestSolveLogsComponentAndSolveID(t *testing.T) {
	log, hook := test.NewNullLogger()

	team, err := NewSolver(log).Solve([]squad.Player{midfielder("Alice", 10, nil)}, []squad.RoleID{"CM"}, nil)
	require.NoError(t, err)

	require.NotEmpty(t, hook.Entries)
	for _, e := range hook.Entries {
		assert.Equal(t, "engine", e.Data["component"])
		assert.Equal(t, team.SolveID, e.Data["solve_id"])
	}
}

func TestSolveDeterministic(t *testing.T) {
	players := []squad.Player{
		midfielder("Alice", 12, map[squad.Ability]float64{squad.AbilityVision: 16}),
		midfielder("Bob", 12, map[squad.Ability]float64{squad.AbilityTackling: 16}),
		midfielder("Carol", 11, nil),
		defender("Dan", squad.RightFooted, 13),
	}
	roleIDs := []squad.RoleID{"DM", "CM", "AM", "CD"}

	first, err := FindOptimalAssignments(players, roleIDs)
	require.NoError(t, err)
	second, err := FindOptimalAssignments(players, roleIDs)
	require.NoError(t, err)

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.TotalScore, second.TotalScore)
}

func TestSolveTeamInvariants(t *testing.T) {
	players := []squad.Player{
		squad.Player{Name: "Gil", Category: squad.CategoryGoalkeeper, Foot: squad.RightFooted,
			Ratings: uniformRatings(13, nil)},
		defender("Ann", squad.LeftFooted, 12),
		defender("Ben", squad.RightFooted, 11),
		midfielder("Cal", 12, nil),
		midfielder("Dee", 10, nil),
		squad.Player{Name: "Eve", Category: squad.CategoryAttacker, Foot: squad.BothFooted,
			Ratings: uniformRatings(14, nil)},
	}
	roleIDs := []squad.RoleID{"GK", "CD", "FB-L", "CM", "ST"}
	filters := squad.FilterSet{squad.PinFilter{Role: "CM", PlayerName: "Dee"}}

	team, err := FindOptimalAssignmentsWithFilters(players, roleIDs, filters)
	require.NoError(t, err)
	require.Len(t, team.Assignments, len(roleIDs))

	seenRoles := make(map[squad.RoleID]bool)
	seenPlayers := make(map[string]bool)
	for _, a := range team.Assignments {
		assert.False(t, seenRoles[a.Role], "role %s assigned twice", a.Role)
		assert.False(t, seenPlayers[a.Player.Name], "player %s assigned twice", a.Player.Name)
		seenRoles[a.Role] = true
		seenPlayers[a.Player.Name] = true

		assert.True(t, IsPlayerEligibleForRole(a.Player, a.Role, filters),
			"assignment %s -> %s must be eligible", a.Player.Name, a.Role)
		assert.GreaterOrEqual(t, a.Score, 0.0)
	}

	// Assignments come out in catalogue order
	for i := 1; i < len(team.Assignments); i++ {
		assert.Less(t, roles.IndexOf(team.Assignments[i-1].Role), roles.IndexOf(team.Assignments[i].Role))
	}

	// Globally optimal: no alternative matching beats the solver's total
	best := bruteForceBest(players, roleIDs, filters)
	assert.InDelta(t, best, team.TotalScore, 1e-9)
}

// bruteForceBest enumerates every feasible one-to-one matching and returns the
// maximal total score. Only viable for the small pools used in tests.
func bruteForceBest(players []squad.Player, roleIDs []squad.RoleID, filters squad.FilterSet) float64 {
	pool := squad.SortPlayers(players)
	used := make([]bool, len(pool))
	best := -1.0

	var walk func(roleIdx int, total float64)
	walk = func(roleIdx int, total float64) {
		if roleIdx == len(roleIDs) {
			if total > best {
				best = total
			}
			return
		}
		role, _ := roles.Lookup(roleIDs[roleIdx])
		for i, p := range pool {
			if used[i] || !IsPlayerEligibleForRole(p, roleIDs[roleIdx], filters) {
				continue
			}
			used[i] = true
			walk(roleIdx+1, total+AssignmentScore(p, role))
			used[i] = false
		}
	}
	walk(0, 0)
	return best
}

func TestSolveMatchesBruteForce(t *testing.T) {
	players := []squad.Player{
		midfielder("Alice", 12, map[squad.Ability]float64{squad.AbilityStamina: 18}),
		midfielder("Bob", 13, map[squad.Ability]float64{squad.AbilityVision: 17}),
		midfielder("Carol", 11, map[squad.Ability]float64{squad.AbilityTackling: 19}),
		midfielder("Dave", 14, nil),
		midfielder("Erin", 10, map[squad.Ability]float64{squad.AbilityPassing: 20}),
	}
	roleIDs := []squad.RoleID{"DM", "CM", "BBM", "AM"}

	team, err := FindOptimalAssignments(players, roleIDs)
	require.NoError(t, err)

	best := bruteForceBest(players, roleIDs, nil)
	assert.InDelta(t, best, team.TotalScore, 1e-9)
}
