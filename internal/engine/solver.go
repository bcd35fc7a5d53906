// Package engine solves the squad assignment problem: an exact maximum-weight
// bipartite matching of players to roles under eligibility and filter
// constraints. The solver is stateless between calls and never returns a
// greedy local optimum or a partial team.
package engine

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/gaffertool/gaffer/internal/roles"
	"github.com/gaffertool/gaffer/internal/squad"
	"github.com/gaffertool/gaffer/pkg/logger"
)

// Solver computes optimal squad assignments
type Solver struct {
	logger *logrus.Entry
}

// NewSolver creates a solver logging through log; a nil log uses the global logger
func NewSolver(log *logrus.Logger) *Solver {
	if log == nil {
		return &Solver{logger: logger.WithComponent("engine")}
	}
	return &Solver{logger: log.WithField("component", "engine")}
}

// FindOptimalAssignments solves without filters
func FindOptimalAssignments(players []squad.Player, roleIDs []squad.RoleID) (*squad.Team, error) {
	return NewSolver(nil).Solve(players, roleIDs, nil)
}

// FindOptimalAssignmentsWithFilters solves under the supplied filter set
func FindOptimalAssignmentsWithFilters(players []squad.Player, roleIDs []squad.RoleID, filters squad.FilterSet) (*squad.Team, error) {
	return NewSolver(nil).Solve(players, roleIDs, filters)
}

// Solve selects the one-to-one assignment of players to roles that maximizes
// total score subject to eligibility and the filter set. Every input produces
// a fresh team; infeasible inputs yield a structured error and no partial
// result.
func (s *Solver) Solve(players []squad.Player, roleIDs []squad.RoleID, filters squad.FilterSet) (*squad.Team, error) {
	solveID := uuid.New().String()
	log := s.logger.WithFields(logrus.Fields{
		"solve_id":     solveID,
		"role_count":   len(roleIDs),
		"player_count": len(players),
		"filter_count": len(filters),
	})
	log.Info("Starting squad solve")

	team := &squad.Team{SolveID: solveID}
	if len(roleIDs) == 0 {
		log.Info("Empty role selection, returning empty team")
		return team, nil
	}

	if err := checkRoleSelection(roleIDs); err != nil {
		return nil, err
	}

	// Stable player order makes repeated solves bit-identical
	pool := squad.SortPlayers(players)

	if err := checkFeasibility(pool, roleIDs, filters, log); err != nil {
		return nil, err
	}

	if len(roleIDs) > len(pool) {
		return nil, squad.NewError(squad.ErrCodeAssignment,
			"more roles (%d) than players (%d)", len(roleIDs), len(pool)).WithRoles(roleIDs)
	}

	// Maximize total score by minimizing negated scores; forbidden pairs get
	// a dominating cost and are checked again after matching.
	cost := mat.NewDense(len(roleIDs), len(pool), nil)
	var maxAbs float64
	for i, roleID := range roleIDs {
		role, _ := roles.Lookup(roleID)
		for j, p := range pool {
			if IsPlayerEligibleForRole(p, roleID, filters) {
				score := AssignmentScore(p, role)
				cost.Set(i, j, -score)
				if math.Abs(score) > maxAbs {
					maxAbs = math.Abs(score)
				}
			}
		}
	}
	// The cost must exceed what any matching of real scores can recover, so
	// it is scaled from the data rather than fixed. Saturation keeps it
	// finite for extreme rating magnitudes.
	forbidden := saturatingAdd(saturatingMul(float64(len(roleIDs)+1), maxAbs), 1)
	for i, roleID := range roleIDs {
		for j, p := range pool {
			if !IsPlayerEligibleForRole(p, roleID, filters) {
				cost.Set(i, j, forbidden)
			}
		}
	}

	matched := minCostAssignment(cost)

	var infeasible []squad.RoleID
	for i, roleID := range roleIDs {
		if !IsPlayerEligibleForRole(pool[matched[i]], roleID, filters) {
			infeasible = append(infeasible, roleID)
		}
	}
	if len(infeasible) > 0 {
		log.WithField("roles", infeasible).Warn("No feasible matching covers all roles")
		return nil, squad.NewError(squad.ErrCodeAssignment,
			"no feasible assignment covers every role").WithRoles(infeasible)
	}

	for i, roleID := range roleIDs {
		role, _ := roles.Lookup(roleID)
		p := pool[matched[i]]
		team.Assignments = append(team.Assignments, squad.Assignment{
			Player: p,
			Role:   roleID,
			Score:  AssignmentScore(p, role),
		})
	}

	// Emit in catalogue order
	sort.SliceStable(team.Assignments, func(i, j int) bool {
		return roles.IndexOf(team.Assignments[i].Role) < roles.IndexOf(team.Assignments[j].Role)
	})

	for _, a := range team.Assignments {
		team.TotalScore = saturatingAdd(team.TotalScore, a.Score)
	}

	log.WithFields(logrus.Fields{
		"assignments": len(team.Assignments),
		"total_score": team.TotalScore,
	}).Info("Squad solve completed")

	return team, nil
}

// checkRoleSelection defends the solver against selections the validator
// should have rejected; hitting these from a validated role file is a bug.
func checkRoleSelection(roleIDs []squad.RoleID) error {
	seen := make(map[squad.RoleID]bool, len(roleIDs))
	for _, id := range roleIDs {
		if !roles.IsValidRole(id) {
			return squad.NewError(squad.ErrCodeValidation, "unknown role").WithRole(id)
		}
		if seen[id] {
			return squad.NewError(squad.ErrCodeValidation, "duplicate role").WithRole(id)
		}
		seen[id] = true
	}
	return nil
}

// checkFeasibility rejects roles no player can ever fill, distinguishing pin
// conflicts from plain unfillable roles.
func checkFeasibility(pool []squad.Player, roleIDs []squad.RoleID, filters squad.FilterSet, log *logrus.Entry) error {
	var unfillable []squad.RoleID
	for _, roleID := range roleIDs {
		if eligibleCount(pool, roleID, filters) > 0 {
			continue
		}
		if pin, ok := filters.PinFor(roleID); ok {
			return squad.NewError(squad.ErrCodeFilterConflict,
				"pinned player is not eligible for role").
				WithRole(roleID).WithPlayer(pin.PlayerName).WithFilter(pin.String())
		}
		unfillable = append(unfillable, roleID)
	}
	if len(unfillable) > 0 {
		log.WithField("roles", unfillable).Warn("Roles have no eligible players")
		return squad.NewError(squad.ErrCodeAssignment,
			"no eligible player for role(s)").WithRoles(unfillable)
	}
	return nil
}
