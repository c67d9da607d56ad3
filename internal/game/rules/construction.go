package rules

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// Settings holds the tunable rewards of the construction system
type Settings struct {
	HandLimit   int // cards kept before the oldest is discarded, 0 for unlimited
	BuildPoints int // victory points for constructing a blueprint
}

// ConstructionSystem handles city capture, exploring, blueprint matching,
// building activation and card draws
type ConstructionSystem struct {
	logger   zerolog.Logger
	settings Settings
}

// NewConstructionSystem creates a new construction system
func NewConstructionSystem(logger zerolog.Logger, settings Settings) *ConstructionSystem {
	return &ConstructionSystem{
		logger:   logger.With().Str("component", "ConstructionSystem").Logger(),
		settings: settings,
	}
}

// Capture returns a new game in which the meeple key standing on the city at
// pos has tried to take it
func (cs *ConstructionSystem) Capture(g core.Game, key int, pos core.Position) (core.Game, []core.Outcome) {
	w := g.Clone()
	outcomes := cs.capture(&w, key, pos)
	return w, outcomes
}

func (cs *ConstructionSystem) capture(g *core.Game, key int, pos core.Position) []core.Outcome {
	m := g.Meeple(key)
	t := g.TerrainAt(pos)
	city, ok := t.City()
	if m == nil || !ok || city.Team == m.Team {
		return nil
	}
	team := m.Team

	strength := 0
	for _, k := range g.Stack(pos) {
		if g.Meeples[k].Team == team {
			strength += g.Meeples[k].Strength
		}
	}
	if strength < city.Defense {
		cs.logger.Debug().
			Int("team", team).
			Str("city", city.Name).
			Int("strength", strength).
			Int("defense", city.Defense).
			Msg("City held")
		return []core.Outcome{{Kind: core.OutcomeCaptureFailed, Team: team, Keys: []int{key}, Position: pos, Amount: strength}}
	}

	from := city.Team
	if from >= 0 && from < len(g.Players) {
		g.Players[from] = g.Players[from].LoseCity(city.Key)
	}
	g.Players[team] = g.Players[team].GainCity(city.Key)
	if kind, ok := t.Geography.Blueprint(); ok && g.Players[team].Phases[kind] == core.NotBuilt {
		g.Players[team].Phases[kind] = core.Blueprint
	}

	m.Strength += int(math.Floor(math.Sqrt(float64(m.Strength * city.Defense))))
	city.Team = team
	city.Resources = core.Resources{}
	city.Production = core.Resources{}
	t.Construction = city

	cs.logger.Info().
		Int("team", team).
		Int("from_team", from).
		Str("city", city.Name).
		Int("strength", m.Strength).
		Msg("City captured")
	return []core.Outcome{{Kind: core.OutcomeCityCaptured, Team: team, Keys: []int{key}, Position: pos, Amount: city.Key}}
}

// Explore returns a new game in which every selected meeple of team works the
// tile it stands on. Every tile must be exclusively controlled by team, or the
// input game is returned with ErrNotFullyControlled.
func (cs *ConstructionSystem) Explore(g core.Game, team int, keys []int) (core.Game, []core.Outcome, error) {
	w := g.Clone()
	outcomes, err := cs.explore(&w, team, keys)
	if err != nil {
		return g, nil, err
	}
	return w, outcomes, nil
}

func (cs *ConstructionSystem) explore(g *core.Game, team int, keys []int) ([]core.Outcome, error) {
	for _, key := range keys {
		if g.Meeple(key) == nil {
			return nil, core.ErrMeepleNotAvailable
		}
	}
	order := SortByIndex(g, keys)
	for _, key := range order {
		pos := g.Meeples[key].Position
		if !g.ExclusivelyControls(pos, team) {
			return nil, core.WrapPositionError(pos, core.ErrNotFullyControlled)
		}
	}

	var outcomes []core.Outcome
	for _, key := range order {
		m := g.Meeple(key)
		if m == nil {
			continue
		}
		pos := m.Position
		side := m.Side
		outcomes = append(outcomes, core.Outcome{Kind: core.OutcomeExplored, Team: team, Keys: []int{key}, Position: pos})
		outcomes = append(outcomes, cs.work(g, team, key, pos)...)
		if g.Meeple(key) == nil {
			continue
		}
		outcomes = append(outcomes, cs.matchAll(g, team, pos)...)
		if m := g.Meeple(key); m != nil && m.Side == side {
			m.Side = m.Side.Flip()
		}
	}
	return outcomes, nil
}

// work applies the tile effect of exploring
func (cs *ConstructionSystem) work(g *core.Game, team, key int, pos core.Position) []core.Outcome {
	t := g.TerrainAt(pos)
	switch c := t.Construction.(type) {
	case core.EmptySite:
		if c.Resources.IsZero() {
			return nil
		}
		out := cs.collect(g, team, pos, c.Resources)
		c.Resources = core.Resources{}
		t.Construction = c
		return []core.Outcome{out}
	case core.City:
		if c.Team != team || c.Resources.IsZero() {
			return nil
		}
		out := cs.collect(g, team, pos, c.Resources)
		c.Resources = core.Resources{}
		t.Construction = c
		return []core.Outcome{out}
	case core.Building:
		// The explorer always belongs to the acting team
		return cs.activate(g, pos, key, g.Meeples[key].Team == g.Turn.Team)
	default:
		return nil
	}
}

func (cs *ConstructionSystem) collect(g *core.Game, team int, pos core.Position, r core.Resources) core.Outcome {
	g.Players[team].Resources = g.Players[team].Resources.Add(r)
	cs.logger.Debug().Int("team", team).Str("position", pos.String()).Ints("resources", r[:]).Msg("Resources collected")
	return core.Outcome{Kind: core.OutcomeResourcesCollected, Team: team, Position: pos, Amount: total(r)}
}

// matchAll draws cards for built kinds and constructs blueprint kinds whose
// shape fits around pos
func (cs *ConstructionSystem) matchAll(g *core.Game, team int, pos core.Position) []core.Outcome {
	var outcomes []core.Outcome
	for kind := core.BuildingKind(0); kind < core.NumBuildingKinds; kind++ {
		if g.Players[team].Phases[kind] != core.Built {
			continue
		}
		if cells, ok := FindPattern(g, team, kind, pos); ok {
			flipCells(g, cells)
			outcomes = append(outcomes, cs.draw(g, team, kind, pos)...)
		}
	}
	for kind := core.BuildingKind(0); kind < core.NumBuildingKinds; kind++ {
		if g.Players[team].Phases[kind] != core.Blueprint {
			continue
		}
		if cells, ok := FindPattern(g, team, kind, pos); ok {
			outcomes = append(outcomes, cs.construct(g, team, kind, pos, cells))
		}
	}
	return outcomes
}

// construct turns the matched cells into building tiles
func (cs *ConstructionSystem) construct(g *core.Game, team int, kind core.BuildingKind, pos core.Position, cells []core.Position) core.Outcome {
	keys := make([]int, 0, len(cells))
	for _, cell := range cells {
		t := g.TerrainAt(cell)
		site, _ := t.Construction.(core.EmptySite)
		t.Construction = core.Building{
			Team:       team,
			Kind:       kind,
			Side:       g.Turn.Side,
			Production: site.Production,
			Resources:  site.Resources,
		}
		keys = append(keys, t.Top)
	}
	flipCells(g, cells)
	g.Players[team].Phases[kind] = core.Built
	g.Players[team].VictoryPoints += cs.settings.BuildPoints

	cs.logger.Info().
		Int("team", team).
		Str("kind", kind.String()).
		Str("anchor", pos.String()).
		Msg("Building constructed")
	return core.Outcome{Kind: core.OutcomeBuildingConstructed, Team: team, Keys: keys, Position: pos, Amount: int(kind)}
}

func flipCells(g *core.Game, cells []core.Position) {
	for _, cell := range cells {
		if m := g.TopAt(cell); m != nil {
			m.Side = m.Side.Flip()
		}
	}
}
