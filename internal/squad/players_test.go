package squad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayerData(t *testing.T) {
	data := []byte(`[
		{"name": "Alice", "category": "midfielder", "foot": "right", "ratings": {"passing": 15, "vision": 12}},
		{"name": "Bob", "category": "defender", "foot": "left", "ratings": {"tackling": 14}}
	]`)

	players, err := ParsePlayerData(data)
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, CategoryMidfielder, players[0].Category)
	assert.Equal(t, 15.0, players[0].Rating(AbilityPassing))
	assert.Equal(t, 0.0, players[0].Rating(AbilityTackling))
	assert.Equal(t, LeftFooted, players[1].Foot)
}

func TestParsePlayerDataErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantCode ErrorCode
	}{
		{"malformed json", `{"name":`, ErrCodeParse},
		{"missing name", `[{"category": "defender", "foot": "left"}]`, ErrCodeValidation},
		{"duplicate name", `[
			{"name": "Alice", "category": "defender", "foot": "left"},
			{"name": "Alice", "category": "attacker", "foot": "right"}
		]`, ErrCodeValidation},
		{"unknown category", `[{"name": "Alice", "category": "libero", "foot": "left"}]`, ErrCodeValidation},
		{"unknown foot", `[{"name": "Alice", "category": "defender", "foot": "ambidextrous"}]`, ErrCodeValidation},
		{"unknown ability", `[{"name": "Alice", "category": "defender", "foot": "left", "ratings": {"juggling": 9}}]`, ErrCodeValidation},
		{"negative rating", `[{"name": "Alice", "category": "defender", "foot": "left", "ratings": {"tackling": -1}}]`, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlayerData([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, CodeOf(err))
		})
	}
}

func TestParsePlayerFileMissing(t *testing.T) {
	_, err := ParsePlayerFile("no/such/file.json")
	require.Error(t, err)
	assert.Equal(t, ErrCodeIO, CodeOf(err))
}
