package mapgen

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

const unclaimed = -1

// StatRange is an inclusive range a stat is rolled from
type StatRange struct {
	Min, Max int
}

// MeepleStats holds the ranges rolled for a new meeple
type MeepleStats struct {
	Strength   StatRange
	Resistance StatRange
	Faith      StatRange
	Speed      StatRange
}

// MapConfig holds configuration for map generation
type MapConfig struct {
	Size            int
	PlayerCount     int
	CityCapacity    int
	CityDefense     StatRange
	Capacity        map[core.Geography]int
	NeutralDensity  float64 // neutral spawn chance per spare capacity slot
	GrowthSharpness float64 // steepness of the patch acceptance curve
	NoiseFrequency  float64
	MaxProduction   int
	StartStats      MeepleStats
	NeutralStats    MeepleStats
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(size, players int) MapConfig {
	return MapConfig{
		Size:         size,
		PlayerCount:  players,
		CityCapacity: 4,
		CityDefense:  StatRange{Min: 10, Max: 30},
		Capacity: map[core.Geography]int{
			core.Sea:       0,
			core.Desert:    1,
			core.Grassland: 4,
			core.Forest:    3,
			core.Mountain:  2,
			core.Hills:     3,
			core.Wetland:   2,
		},
		NeutralDensity:  0.1,
		GrowthSharpness: 3,
		NoiseFrequency:  0.15,
		MaxProduction:   3,
		StartStats: MeepleStats{
			Strength:   StatRange{Min: 8, Max: 12},
			Resistance: StatRange{Min: 20, Max: 30},
			Faith:      StatRange{Min: 5, Max: 10},
			Speed:      StatRange{Min: 1, Max: 2},
		},
		NeutralStats: MeepleStats{
			Strength:   StatRange{Min: 2, Max: 6},
			Resistance: StatRange{Min: 5, Max: 15},
			Faith:      StatRange{Min: 0, Max: 3},
			Speed:      StatRange{Min: 1, Max: 1},
		},
	}
}

// Map is the generated starting board
type Map struct {
	Size     int
	Terrains []core.Terrain
	Meeples  []core.Meeple
	Cities   []int // city keys in creation order
}

// patch is a region grown around one seed
type patch struct {
	id    int
	tiles []int
	city  int // tile index or unclaimed
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand, logger zerolog.Logger) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
		logger: logger.With().Str("component", "MapGenerator").Logger(),
	}
}

// PatchCount is the number of seeds per board side for playerCount teams
func PatchCount(playerCount int) int {
	return int(math.Ceil(math.Sqrt(5 * float64(playerCount+1))))
}

// GenerateMap grows patches, lays out terrain and places the starting meeples.
// Constraint failures shrink the result rather than failing.
func (g *Generator) GenerateMap() *Map {
	size := g.config.Size
	owner := make([]int, size*size)
	for i := range owner {
		owner[i] = unclaimed
	}

	patches := g.growPatches(owner)
	geographies := g.assignGeographies(len(patches))

	m := &Map{Size: size, Terrains: g.layTerrain(owner, patches, geographies)}
	m.Cities = g.foundCities(m.Terrains, patches)
	g.placeStarters(m)
	g.scatterNeutrals(m)

	g.logger.Debug().
		Int("size", size).
		Int("patches", len(patches)).
		Int("cities", len(m.Cities)).
		Int("meeples", len(m.Meeples)).
		Msg("Map generated")
	return m
}

// growPatches claims tiles for every seed that is still free
func (g *Generator) growPatches(owner []int) []*patch {
	size := g.config.Size
	count := PatchCount(g.config.PlayerCount)
	span := float64(size) / float64(count)

	seeds := make([]int, 0, count*count)
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			row := min(int((float64(i)+0.5)*span), size-1)
			col := min(int((float64(j)+0.5)*span), size-1)
			seeds = append(seeds, core.NewPosition(row, col).ToIndex(size))
		}
	}

	var patches []*patch
	for _, i := range g.rng.Perm(len(seeds)) {
		seed := seeds[i]
		id := len(patches)
		if owner[seed] != unclaimed || !g.separated(owner, seed, id) {
			continue
		}
		p := &patch{id: id, city: unclaimed}
		p.claim(owner, seed)
		g.grow(owner, p, span)
		g.placeCity(owner, p)
		patches = append(patches, p)
	}
	return patches
}

func (p *patch) claim(owner []int, idx int) {
	owner[idx] = p.id
	p.tiles = append(p.tiles, idx)
}

// grow adds neighbors until the acceptance curve or the iteration cap stops it
func (g *Generator) grow(owner []int, p *patch, span float64) {
	size := g.config.Size
	target := math.Pi * math.Pow((span-0.5)/2, 2)
	maxIter := int(span * span)

	for iter := 0; iter < maxIter; iter++ {
		from := core.FromIndex(p.tiles[g.rng.Intn(len(p.tiles))], size)

		var candidates []int
		for _, n := range from.ValidNeighbors(size) {
			idx := n.ToIndex(size)
			if owner[idx] == unclaimed && g.separated(owner, idx, p.id) {
				candidates = append(candidates, idx)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		pick := candidates[g.rng.Intn(len(candidates))]
		if g.rng.Float64() < g.acceptance(len(p.tiles), target) {
			p.claim(owner, pick)
		}
	}
}

// acceptance falls from ~1 for a fresh patch to 0 at the target area
func (g *Generator) acceptance(tiles int, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Tanh(g.config.GrowthSharpness * (1 - float64(tiles)/target))
}

// separated reports whether no eight-neighbor of idx belongs to another patch
func (g *Generator) separated(owner []int, idx, id int) bool {
	size := g.config.Size
	for _, n := range core.FromIndex(idx, size).ValidSurrounding(size) {
		if o := owner[n.ToIndex(size)]; o != unclaimed && o != id {
			return false
		}
	}
	return true
}

// placeCity picks an interior patch tile and claims the ring around it.
// A patch hugging the edge may end up without a city.
func (g *Generator) placeCity(owner []int, p *patch) {
	size := g.config.Size
	interior := func(idx int) bool {
		return len(core.FromIndex(idx, size).ValidNeighbors(size)) == 4
	}

	city := unclaimed
	for attempt := 0; attempt < 2*len(p.tiles); attempt++ {
		if idx := p.tiles[g.rng.Intn(len(p.tiles))]; interior(idx) {
			city = idx
			break
		}
	}
	if city == unclaimed {
		for _, idx := range p.tiles {
			if interior(idx) {
				city = idx
				break
			}
		}
	}
	if city == unclaimed {
		g.logger.Debug().Int("patch", p.id).Int("tiles", len(p.tiles)).Msg("No interior tile for a city, patch stays cityless")
		return
	}

	p.city = city
	for _, n := range core.FromIndex(city, size).ValidSurrounding(size) {
		if idx := n.ToIndex(size); owner[idx] == unclaimed {
			p.claim(owner, idx)
		}
	}
}

// assignGeographies cycles a shuffled order of the patch kinds
func (g *Generator) assignGeographies(n int) []core.Geography {
	kinds := core.PatchGeographies
	g.rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	out := make([]core.Geography, n)
	for i := range out {
		out[i] = kinds[i%len(kinds)]
	}
	return out
}

// layTerrain turns the ownership grid into tiles with capacity and production
func (g *Generator) layTerrain(owner []int, patches []*patch, geographies []core.Geography) []core.Terrain {
	size := g.config.Size
	noise := opensimplex.NewNormalized(g.rng.Int63())
	terrains := make([]core.Terrain, size*size)

	for idx := range terrains {
		pos := core.FromIndex(idx, size)
		geo := core.Sea
		switch {
		case owner[idx] != unclaimed:
			geo = geographies[owner[idx]]
		case g.touchesPatch(owner, pos.ValidNeighbors(size)):
			geo = core.Desert
		case g.touchesPatch(owner, pos.ValidSurrounding(size)):
			geo = core.Desert
		}

		terrains[idx] = core.NewTerrain(pos, geo, g.config.Capacity[geo])
		if res, ok := geo.Yield(); ok {
			var production core.Resources
			production[res] = g.production(noise, pos)
			terrains[idx].Construction = core.EmptySite{Production: production}
		}
	}

	for _, p := range patches {
		if p.city != unclaimed {
			terrains[p.city].Capacity = g.config.CityCapacity
			terrains[p.city].SpaceLeft = g.config.CityCapacity
		}
	}
	return terrains
}

func (g *Generator) touchesPatch(owner []int, around []core.Position) bool {
	for _, n := range around {
		if owner[n.ToIndex(g.config.Size)] != unclaimed {
			return true
		}
	}
	return false
}

// production samples the noise field into 1..MaxProduction
func (g *Generator) production(noise opensimplex.Noise, pos core.Position) int {
	f := g.config.NoiseFrequency
	v := noise.Eval2(float64(pos.Col)*f, float64(pos.Row)*f)
	amount := 1 + int(v*float64(g.config.MaxProduction))
	return max(1, min(amount, g.config.MaxProduction))
}

// foundCities replaces each patch's city tile construction with a neutral city
func (g *Generator) foundCities(terrains []core.Terrain, patches []*patch) []int {
	var keys []int
	for _, p := range patches {
		if p.city == unclaimed {
			continue
		}
		key := len(keys)
		var production core.Resources
		if site, ok := terrains[p.city].Construction.(core.EmptySite); ok {
			production = site.Production
		}
		terrains[p.city].Construction = core.City{
			Key:        key,
			Name:       CityName(key),
			Defense:    g.roll(g.config.CityDefense),
			Team:       core.NeutralTeam,
			Production: production,
		}
		keys = append(keys, key)
	}
	return keys
}

// placeStarters gives every active team one meeple away from the border
func (g *Generator) placeStarters(m *Map) {
	size := g.config.Size
	free := func(idx int) bool {
		t := &m.Terrains[idx]
		return t.HasSpace() && !t.IsOccupied()
	}
	inner := func(idx int) bool {
		return free(idx) && !core.FromIndex(idx, size).IsBorder(size)
	}

	for team := core.NeutralTeam + 1; team <= g.config.PlayerCount; team++ {
		idx := g.pickTile(len(m.Terrains), inner)
		if idx == unclaimed {
			idx = g.pickTile(len(m.Terrains), free)
		}
		if idx == unclaimed {
			g.logger.Warn().Int("team", team).Msg("No free tile for starting meeple")
			continue
		}
		g.spawn(m, idx, team, g.config.StartStats)
	}
}

// pickTile tries random tiles first and falls back to a scan
func (g *Generator) pickTile(n int, ok func(int) bool) int {
	for attempt := 0; attempt < n; attempt++ {
		if idx := g.rng.Intn(n); ok(idx) {
			return idx
		}
	}
	for idx := 0; idx < n; idx++ {
		if ok(idx) {
			return idx
		}
	}
	return unclaimed
}

// scatterNeutrals drops wild meeples on roomy empty sites
func (g *Generator) scatterNeutrals(m *Map) {
	for idx := range m.Terrains {
		t := &m.Terrains[idx]
		if !t.IsEmptySite() || !t.HasSpace() || t.IsOccupied() {
			continue
		}
		if g.rng.Float64() < g.config.NeutralDensity*float64(t.Capacity-1) {
			g.spawn(m, idx, core.NeutralTeam, g.config.NeutralStats)
		}
	}
}

func (g *Generator) spawn(m *Map, idx, team int, stats MeepleStats) {
	key := len(m.Meeples)
	t := &m.Terrains[idx]
	mp := core.NewMeeple(key, t.Position, team, core.Heads, core.Stats{
		Strength:   g.roll(stats.Strength),
		Resistance: g.roll(stats.Resistance),
		Faith:      g.roll(stats.Faith),
		Speed:      g.roll(stats.Speed),
	})
	mp.Below = t.Top
	t.Top = key
	t.SpaceLeft--
	m.Meeples = append(m.Meeples, mp)
}

func (g *Generator) roll(r StatRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + g.rng.Intn(r.Max-r.Min+1)
}
