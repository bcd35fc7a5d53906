// Package format renders a solved team as text. Rendering is a pure function
// over the team: no I/O, byte-stable across runs with identical inputs.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gaffertool/gaffer/internal/roles"
	"github.com/gaffertool/gaffer/internal/squad"
)

// RenderTeam renders the starting side in catalogue order, one role per line
// with the assigned player and score, followed by the total and any bench.
func RenderTeam(team *squad.Team) string {
	assignments := make([]squad.Assignment, len(team.Assignments))
	copy(assignments, team.Assignments)
	sort.SliceStable(assignments, func(i, j int) bool {
		return roles.IndexOf(assignments[i].Role) < roles.IndexOf(assignments[j].Role)
	})

	var b strings.Builder
	b.WriteString("Starting XI\n")
	for _, a := range assignments {
		writeAssignment(&b, a)
	}
	fmt.Fprintf(&b, "%-6s %-26s %7.2f\n", "", "Total", team.TotalScore)

	if len(team.Bench) > 0 {
		b.WriteString("\nBench\n")
		for _, a := range team.Bench {
			writeAssignment(&b, a)
		}
	}

	return b.String()
}

func writeAssignment(b *strings.Builder, a squad.Assignment) {
	fmt.Fprintf(b, "%-6s %-26s %7.2f\n", a.Role, a.Player.Name, a.Score)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RenderCatalog renders the role catalogue grouped by category
func RenderCatalog() string {
	var b strings.Builder
	for _, category := range squad.ValidCategories() {
		fmt.Fprintf(&b, "%s\n", capitalize(string(category)))
		for _, id := range roles.RolesForCategory(category) {
			role, _ := roles.Lookup(id)
			foot := ""
			if role.Foot != "" {
				foot = fmt.Sprintf(" (%s-footed)", role.Foot)
			}
			fmt.Fprintf(&b, "  %-6s %s%s\n", role.ID, role.Name, foot)
		}
	}
	return b.String()
}
