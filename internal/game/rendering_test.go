package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
	"github.com/mitchelldurbincs/SwarmConquest/internal/testutil"
)

func TestBoard(t *testing.T) {
	g := testutil.CreateTestGame(4, 2, 4)
	testutil.PlaceMeeple(&g, core.NewPosition(1, 1), 1, testutil.DefaultStats)
	testutil.PlaceMeeple(&g, core.NewPosition(1, 1), 1, testutil.DefaultStats)
	b := testutil.PlaceMeeple(&g, core.NewPosition(2, 2), 2, testutil.DefaultStats)
	g.Meeples[b].Side = core.Tails
	testutil.PlaceCity(&g, core.NewPosition(2, 1), 0, 10, core.NeutralTeam)
	testutil.SetGeography(&g, core.NewPosition(0, 3), core.Sea)

	out := Board(g)
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 5)

	assert.Contains(t, lines[2], "A2", "Team 1 stack of two on row 1")
	assert.Contains(t, lines[3], "b1", "Tails-up meeples are lowercase")
	assert.Contains(t, lines[3], citySymbol)
	assert.Contains(t, lines[1], seaSymbol)
	assert.Contains(t, out, "round 1, team A to act, heads side")
}

func TestTeamLetter(t *testing.T) {
	assert.Equal(t, "N", teamLetter(core.NeutralTeam))
	assert.Equal(t, "A", teamLetter(1))
	assert.Equal(t, "?", teamLetter(-1))
	assert.Equal(t, ColorGray, teamColor(core.NeutralTeam))
	assert.Equal(t, ColorWhite, teamColor(100))
}

func TestStandings(t *testing.T) {
	g := testutil.CreateTestGame(5, 3, 4)
	testutil.PlaceMeeple(&g, core.NewPosition(0, 0), 1, testutil.DefaultStats)
	testutil.PlaceMeeple(&g, core.NewPosition(1, 0), 2, testutil.DefaultStats)
	testutil.PlaceMeeple(&g, core.NewPosition(2, 0), 2, testutil.DefaultStats)
	testutil.PlaceCity(&g, core.NewPosition(3, 3), 4, 10, 3)
	g.Players[1].VictoryPoints = 5
	g.Players[1].Phases[core.School] = core.Built
	g.Players[1].Phases[core.Power] = core.Blueprint
	g.Players[1].Resources[core.Grain] = 2
	g.Players[1].Resources[core.Stone] = 3

	standings := Standings(g)

	require.Len(t, standings, 3)
	assert.Equal(t, Standing{Team: 1, SwarmSize: 1, Buildings: 1, Resources: 5, VictoryPoints: 5}, standings[0])
	assert.Equal(t, 2, standings[1].Team, "Ties on points go to the bigger swarm")
	assert.Equal(t, 3, standings[2].Team)
	assert.Equal(t, 1, standings[2].Cities)
}
