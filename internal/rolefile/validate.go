package rolefile

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/gaffertool/gaffer/internal/roles"
	"github.com/gaffertool/gaffer/internal/squad"
)

// MaxSelections caps a role file at a full starting side
const MaxSelections = 11

// ValidateRoles cross-checks parsed selections against the role catalogue:
// every role must exist, no role may appear twice, and the selection may not
// exceed a full side. All problems are aggregated into one validation error.
func ValidateRoles(selections []Selection) error {
	var problems []string
	var offending []squad.RoleID

	if len(selections) > MaxSelections {
		problems = append(problems, fmt.Sprintf("%d roles selected, at most %d allowed", len(selections), MaxSelections))
	}

	seen := make(map[squad.RoleID]int, len(selections))
	for _, sel := range selections {
		if !roles.IsValidRole(sel.Role) {
			msg := fmt.Sprintf("unknown role %s (line %d)", sel.Role, sel.Line)
			if suggestion := suggestRole(sel.Role); suggestion != "" {
				msg += fmt.Sprintf(", did you mean %s?", suggestion)
			}
			problems = append(problems, msg)
			offending = append(offending, sel.Role)
			continue
		}
		if first, dup := seen[sel.Role]; dup {
			problems = append(problems,
				fmt.Sprintf("duplicate role %s (lines %d and %d)", sel.Role, first, sel.Line))
			offending = append(offending, sel.Role)
			continue
		}
		seen[sel.Role] = sel.Line
	}

	if len(problems) == 0 {
		return nil
	}
	return squad.NewError(squad.ErrCodeValidation, "%s", strings.Join(problems, "; ")).WithRoles(offending)
}

// suggestRole finds the closest catalogue identifier to an unknown role name
func suggestRole(unknown squad.RoleID) string {
	const threshold = 0.5

	best := ""
	bestSimilarity := threshold
	for _, id := range roles.ValidRoles() {
		candidate := string(id)
		distance := fuzzy.LevenshteinDistance(strings.ToUpper(string(unknown)), candidate)
		maxLen := len(candidate)
		if l := len(unknown); l > maxLen {
			maxLen = l
		}
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/float64(maxLen)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = candidate
		}
	}
	return best
}
