package squad

import "sort"

// PlayerType distinguishes goalkeepers from outfield players
type PlayerType string

const (
	PlayerTypeGoalkeeper PlayerType = "goalkeeper"
	PlayerTypeField      PlayerType = "field"
)

// Footedness represents a player's preferred foot
type Footedness string

const (
	LeftFooted  Footedness = "left"
	RightFooted Footedness = "right"
	BothFooted  Footedness = "both"
)

// IsValidFootedness reports whether f is a member of the closed footedness set
func IsValidFootedness(f Footedness) bool {
	switch f {
	case LeftFooted, RightFooted, BothFooted:
		return true
	}
	return false
}

// Satisfies reports whether a player's foot meets a role's side requirement.
// An empty requirement accepts any foot; a both-footed player satisfies any
// side requirement.
func (f Footedness) Satisfies(required Footedness) bool {
	if required == "" {
		return true
	}
	if f == BothFooted {
		return true
	}
	return f == required
}

// PlayerCategory is the positional class that gates role eligibility
type PlayerCategory string

const (
	CategoryGoalkeeper PlayerCategory = "goalkeeper"
	CategoryDefender   PlayerCategory = "defender"
	CategoryMidfielder PlayerCategory = "midfielder"
	CategoryAttacker   PlayerCategory = "attacker"
)

// ValidCategories returns the closed category set in its canonical order
func ValidCategories() []PlayerCategory {
	return []PlayerCategory{CategoryGoalkeeper, CategoryDefender, CategoryMidfielder, CategoryAttacker}
}

// IsValidCategory reports whether c is a member of the closed category set
func IsValidCategory(c PlayerCategory) bool {
	switch c {
	case CategoryGoalkeeper, CategoryDefender, CategoryMidfielder, CategoryAttacker:
		return true
	}
	return false
}

// RoleID is a stable role identifier drawn from the role catalogue
type RoleID string

// Ability is a named numeric attribute drawn from the fixed ability vocabulary
type Ability string

const (
	AbilityReflexes      Ability = "reflexes"
	AbilityHandling      Ability = "handling"
	AbilityAerialReach   Ability = "aerial_reach"
	AbilityDistribution  Ability = "distribution"
	AbilityTackling      Ability = "tackling"
	AbilityMarking       Ability = "marking"
	AbilityPositioning   Ability = "positioning"
	AbilityHeading       Ability = "heading"
	AbilityStrength      Ability = "strength"
	AbilityPassing       Ability = "passing"
	AbilityVision        Ability = "vision"
	AbilityDribbling     Ability = "dribbling"
	AbilityCrossing      Ability = "crossing"
	AbilityStamina       Ability = "stamina"
	AbilityWorkRate      Ability = "work_rate"
	AbilityPace          Ability = "pace"
	AbilityFinishing     Ability = "finishing"
	AbilityOffTheBall    Ability = "off_the_ball"
	AbilityComposure     Ability = "composure"
)

var abilityVocabulary = []Ability{
	AbilityReflexes, AbilityHandling, AbilityAerialReach, AbilityDistribution,
	AbilityTackling, AbilityMarking, AbilityPositioning, AbilityHeading,
	AbilityStrength, AbilityPassing, AbilityVision, AbilityDribbling,
	AbilityCrossing, AbilityStamina, AbilityWorkRate, AbilityPace,
	AbilityFinishing, AbilityOffTheBall, AbilityComposure,
}

var abilitySet = func() map[Ability]bool {
	set := make(map[Ability]bool, len(abilityVocabulary))
	for _, a := range abilityVocabulary {
		set[a] = true
	}
	return set
}()

// Abilities returns the fixed ability vocabulary in its canonical order
func Abilities() []Ability {
	out := make([]Ability, len(abilityVocabulary))
	copy(out, abilityVocabulary)
	return out
}

// IsValidAbility reports whether a is a member of the ability vocabulary
func IsValidAbility(a Ability) bool {
	return abilitySet[a]
}

// Player is a member of the player pool considered by the solver
type Player struct {
	Name     string              `json:"name"`
	Category PlayerCategory      `json:"category"`
	Foot     Footedness          `json:"foot"`
	Ratings  map[Ability]float64 `json:"ratings"`
}

// Type derives the player type from the category
func (p Player) Type() PlayerType {
	if p.Category == CategoryGoalkeeper {
		return PlayerTypeGoalkeeper
	}
	return PlayerTypeField
}

// Rating returns the player's rating for an ability; missing ratings read as zero
func (p Player) Rating(a Ability) float64 {
	return p.Ratings[a]
}

// Assignment is a single (player, role, score) triple selected by the solver
type Assignment struct {
	Player Player  `json:"player"`
	Role   RoleID  `json:"role"`
	Score  float64 `json:"score"`
}

// Team is the solver's output: assignments in catalogue order, each role and
// each player appearing at most once, with maximal total score under the
// supplied filters.
type Team struct {
	SolveID     string       `json:"solve_id"`
	Assignments []Assignment `json:"assignments"`
	Bench       []Assignment `json:"bench,omitempty"`
	TotalScore  float64      `json:"total_score"`
}

// SortPlayers returns a copy of players ordered by name. The solver works on
// sorted input so that repeated solves of the same pool are bit-identical.
func SortPlayers(players []Player) []Player {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
