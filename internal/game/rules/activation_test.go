package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
	"github.com/mitchelldurbincs/SwarmConquest/internal/testutil"
)

func buildingGame(kind core.BuildingKind, owner, cubits, capacity int) core.Game {
	g := testutil.CreateTestGame(3, 2, capacity)
	g.TerrainAt(pos(1, 1)).Construction = core.Building{Team: owner, Kind: kind, Resources: core.Resources{core.Cubit: cubits}}
	return g
}

func TestActivate_Transfers(t *testing.T) {
	_, _, cs := newTestSystems()
	stats := core.Stats{Strength: 10, Resistance: 10, Faith: 10, Speed: 1}

	tests := []struct {
		name  string
		kind  core.BuildingKind
		owner int
		stat  func(m core.Meeple) int
		want  int
	}{
		{"PowerGain", core.Power, 1, func(m core.Meeple) int { return m.Faith }, 14},
		{"PowerLoss", core.Power, 2, func(m core.Meeple) int { return m.Faith }, 6},
		{"SchoolGain", core.School, 1, func(m core.Meeple) int { return m.Strength }, 14},
		{"SchoolLoss", core.School, 2, func(m core.Meeple) int { return m.Strength }, 6},
		{"HospitalGain", core.Hospital, 1, func(m core.Meeple) int { return m.Resistance }, 14},
		{"HospitalLoss", core.Hospital, 2, func(m core.Meeple) int { return m.Resistance }, 6},
		{"ResearchReserved", core.Research, 1, func(m core.Meeple) int { return m.Faith }, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildingGame(tt.kind, tt.owner, 4, 2)
			key := testutil.PlaceMeeple(&g, pos(1, 1), 1, stats)

			cs.activate(&g, pos(1, 1), key, tt.owner == 1)

			assert.Equal(t, tt.want, tt.stat(g.Meeples[key]))
			b, _ := g.TerrainAt(pos(1, 1)).Building()
			if tt.kind == core.Research {
				assert.Equal(t, 4, b.Resources[core.Cubit], "research keeps its cubits")
			} else {
				assert.Equal(t, 0, b.Resources[core.Cubit])
			}
		})
	}
}

func TestActivate_NoCubits(t *testing.T) {
	_, _, cs := newTestSystems()
	g := buildingGame(core.Power, 1, 0, 2)
	key := testutil.PlaceMeeple(&g, pos(1, 1), 1, testutil.DefaultStats)

	assert.Empty(t, cs.activate(&g, pos(1, 1), key, false))
	assert.Equal(t, testutil.DefaultStats.Faith, g.Meeples[key].Faith)
}

func TestActivate_HospitalDrainRemoves(t *testing.T) {
	_, _, cs := newTestSystems()
	g := buildingGame(core.Hospital, 2, 5, 2)
	key := testutil.PlaceMeeple(&g, pos(1, 1), 1, core.Stats{Strength: 4, Resistance: 3, Speed: 1})

	outcomes := cs.activate(&g, pos(1, 1), key, false)

	assert.Equal(t, []core.OutcomeKind{core.OutcomeBuildingActivated, core.OutcomeRemoved}, outcomeKinds(outcomes))
	assert.Nil(t, g.Meeple(key))
	assert.Equal(t, core.NoMeeple, g.TerrainAt(pos(1, 1)).Top)
	assert.Equal(t, 0, g.Players[1].SwarmSize)
	testutil.AssertInvariants(t, g)
}

func TestActivate_StationMerge(t *testing.T) {
	_, _, cs := newTestSystems()
	g := buildingGame(core.Station, 1, 2, 3)
	lower := testutil.PlaceMeeple(&g, pos(1, 1), 1, core.Stats{Strength: 4, Resistance: 6, Faith: 2, Speed: 1})
	top := testutil.PlaceMeeple(&g, pos(1, 1), 1, core.Stats{Strength: 5, Resistance: 7, Faith: 3, Speed: 2})

	outcomes := cs.activate(&g, pos(1, 1), top, true)
	require.Len(t, outcomes, 1)

	m := g.Meeples[top]
	assert.Equal(t, 9, m.Strength)
	assert.Equal(t, 13, m.Resistance)
	assert.Equal(t, 5, m.Faith)
	assert.Equal(t, 3, m.Speed)
	assert.Nil(t, g.Meeple(lower))
	assert.Equal(t, []int{top}, g.Stack(pos(1, 1)))
	assert.Equal(t, 1, g.Players[1].SwarmSize)
	b, _ := g.TerrainAt(pos(1, 1)).Building()
	assert.Equal(t, 1, b.Resources[core.Cubit])
	testutil.AssertInvariants(t, g)
}

func TestActivate_StationSplit(t *testing.T) {
	_, _, cs := newTestSystems()
	g := buildingGame(core.Station, 2, 1, 3)
	key := testutil.PlaceMeeple(&g, pos(1, 1), 1, core.Stats{Strength: 11, Resistance: 6, Faith: 2, Speed: 1})

	outcomes := cs.activate(&g, pos(1, 1), key, false)
	require.Len(t, outcomes, 1)

	stack := g.Stack(pos(1, 1))
	require.Len(t, stack, 2)
	twin := g.Meeples[stack[0]]
	assert.Equal(t, len(g.Meeples)-1, twin.Key)
	assert.Equal(t, 5, twin.Strength)
	assert.Equal(t, 5, g.Meeples[key].Strength)
	assert.Equal(t, 6, twin.Resistance)
	assert.Equal(t, 1, twin.Team)
	assert.Equal(t, 2, g.Players[1].SwarmSize)
	b, _ := g.TerrainAt(pos(1, 1)).Building()
	assert.Equal(t, 0, b.Resources[core.Cubit])
	testutil.AssertInvariants(t, g)
}

func TestActivate_StationNoEffect(t *testing.T) {
	_, _, cs := newTestSystems()

	t.Run("ForeignOnFullTile", func(t *testing.T) {
		g := buildingGame(core.Station, 2, 3, 1)
		key := testutil.PlaceMeeple(&g, pos(1, 1), 1, testutil.DefaultStats)
		assert.Empty(t, cs.activate(&g, pos(1, 1), key, false))
		assert.Len(t, g.Meeples, 1)
	})

	t.Run("OwnerAlone", func(t *testing.T) {
		g := buildingGame(core.Station, 1, 3, 3)
		key := testutil.PlaceMeeple(&g, pos(1, 1), 1, testutil.DefaultStats)
		assert.Empty(t, cs.activate(&g, pos(1, 1), key, false))
	})

	t.Run("NoCubits", func(t *testing.T) {
		g := buildingGame(core.Station, 2, 0, 3)
		key := testutil.PlaceMeeple(&g, pos(1, 1), 1, testutil.DefaultStats)
		assert.Empty(t, cs.activate(&g, pos(1, 1), key, false))
	})
}
