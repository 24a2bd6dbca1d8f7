package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeams(t *testing.T) {
	assert.Equal(t, TeamA, TeamOf(0))
	assert.Equal(t, TeamB, TeamOf(1))
	assert.Equal(t, TeamA, TeamOf(2))
	assert.Equal(t, TeamB, TeamOf(3))
	assert.Equal(t, 2, Partner(0))
	assert.Equal(t, 1, Partner(3))
	assert.Equal(t, TeamB, TeamA.Other())
	assert.Equal(t, [2]int{1, 3}, TeamB.Seats())
}

func TestTeamJSON(t *testing.T) {
	data, err := json.Marshal(MatchOutcome{Winner: TeamB, Final: [2]int{300, 510}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tie":false,"winner":"Team B","final":[300,510]}`, string(data))

	var out MatchOutcome
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, TeamB, out.Winner)

	var team Team
	assert.Error(t, team.UnmarshalText([]byte("Team C")))
}
