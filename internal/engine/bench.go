package engine

import (
	"sort"

	"github.com/gaffertool/gaffer/internal/roles"
	"github.com/gaffertool/gaffer/internal/squad"
)

// FillBench assigns up to size leftover players as substitutes, each at the
// best-scoring role of their own category. Pins and role filters constrain the
// starting side only, so the bench considers category and foot alone.
// Substitutes are ordered by score, then name; roles may repeat on the bench.
func FillBench(team *squad.Team, players []squad.Player, size int) []squad.Assignment {
	if size <= 0 {
		return nil
	}

	starting := make(map[string]bool, len(team.Assignments))
	for _, a := range team.Assignments {
		starting[a.Player.Name] = true
	}

	var bench []squad.Assignment
	for _, p := range squad.SortPlayers(players) {
		if starting[p.Name] {
			continue
		}
		if best, ok := bestRoleFor(p); ok {
			bench = append(bench, best)
		}
	}

	sort.SliceStable(bench, func(i, j int) bool {
		if bench[i].Score != bench[j].Score {
			return bench[i].Score > bench[j].Score
		}
		return bench[i].Player.Name < bench[j].Player.Name
	})

	if len(bench) > size {
		bench = bench[:size]
	}
	return bench
}

// bestRoleFor scores a player at every role of their category and keeps the
// highest; catalogue order breaks ties.
func bestRoleFor(p squad.Player) (squad.Assignment, bool) {
	best := squad.Assignment{Player: p}
	found := false
	for _, roleID := range roles.RolesForCategory(p.Category) {
		role, _ := roles.Lookup(roleID)
		if !p.Foot.Satisfies(role.Foot) {
			continue
		}
		score := AssignmentScore(p, role)
		if !found || score > best.Score {
			best.Role = roleID
			best.Score = score
			found = true
		}
	}
	return best, found
}
