package squad

import (
	"encoding/json"
	"os"
)

// ParsePlayerFile reads a player dataset from disk and parses it. The file
// handle is scoped to this call.
func ParsePlayerFile(path string) ([]Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError(ErrCodeIO, "cannot read player file %s", path).WithCause(err)
	}
	return ParsePlayerData(data)
}

// ParsePlayerData parses a JSON array of player records and validates it
// against the closed category, footedness and ability vocabularies. Missing
// ratings read as zero; unknown ability names and duplicate player names are
// rejected.
func ParsePlayerData(data []byte) ([]Player, error) {
	var players []Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, NewError(ErrCodeParse, "malformed player data").WithCause(err)
	}

	seen := make(map[string]bool, len(players))
	for i, p := range players {
		if p.Name == "" {
			return nil, NewError(ErrCodeValidation, "player %d has no name", i+1)
		}
		if seen[p.Name] {
			return nil, NewError(ErrCodeValidation, "duplicate player").WithPlayer(p.Name)
		}
		seen[p.Name] = true

		if !IsValidCategory(p.Category) {
			return nil, NewError(ErrCodeValidation, "unknown category %q", p.Category).WithPlayer(p.Name)
		}
		if !IsValidFootedness(p.Foot) {
			return nil, NewError(ErrCodeValidation, "unknown footedness %q", p.Foot).WithPlayer(p.Name)
		}
		for ability, rating := range p.Ratings {
			if !IsValidAbility(ability) {
				return nil, NewError(ErrCodeValidation, "unknown ability %q", ability).WithPlayer(p.Name)
			}
			if rating < 0 {
				return nil, NewError(ErrCodeValidation, "negative rating %v for %s", rating, ability).WithPlayer(p.Name)
			}
		}
	}

	return players, nil
}
