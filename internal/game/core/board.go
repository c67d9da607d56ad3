package core

import "fmt"

// Geography is the landscape kind of a tile.
// Sea and Desert are the trivial kinds, the rest grow as patches.
type Geography int

const (
	Sea Geography = iota
	Desert
	Grassland
	Forest
	Mountain
	Hills
	Wetland
)

// PatchGeographies lists the kinds assigned to generated patches in cycle order
var PatchGeographies = [...]Geography{Grassland, Forest, Mountain, Hills, Wetland}

func (g Geography) String() string {
	switch g {
	case Sea:
		return "sea"
	case Desert:
		return "desert"
	case Grassland:
		return "grassland"
	case Forest:
		return "forest"
	case Mountain:
		return "mountain"
	case Hills:
		return "hills"
	case Wetland:
		return "wetland"
	default:
		return fmt.Sprintf("geography(%d)", int(g))
	}
}

// Yield returns the resource a patch of this geography produces.
// The second value is false for barren kinds.
func (g Geography) Yield() (Resource, bool) {
	switch g {
	case Grassland:
		return Grain, true
	case Forest:
		return Timber, true
	case Mountain:
		return Stone, true
	case Hills:
		return Metal, true
	case Wetland:
		return Cubit, true
	default:
		return 0, false
	}
}

// Blueprint returns the building kind unlocked by capturing a city of this geography
func (g Geography) Blueprint() (BuildingKind, bool) {
	switch g {
	case Grassland:
		return Hospital, true
	case Forest:
		return School, true
	case Mountain:
		return Research, true
	case Hills:
		return Station, true
	case Wetland:
		return Power, true
	default:
		return 0, false
	}
}

// Resource indexes a Resources array
type Resource int

const (
	Cubit Resource = iota
	Grain
	Timber
	Stone
	Metal

	NumResources = 5
)

func (r Resource) String() string {
	switch r {
	case Cubit:
		return "cubit"
	case Grain:
		return "grain"
	case Timber:
		return "timber"
	case Stone:
		return "stone"
	case Metal:
		return "metal"
	default:
		return fmt.Sprintf("resource(%d)", int(r))
	}
}

// Resources is a fixed-size amount per resource kind
type Resources [NumResources]int

// Add returns the element-wise sum
func (r Resources) Add(other Resources) Resources {
	for i := range r {
		r[i] += other[i]
	}
	return r
}

// IsZero reports whether every amount is zero
func (r Resources) IsZero() bool {
	return r == Resources{}
}

// BuildingKind identifies one of the five constructible buildings
type BuildingKind int

const (
	Research BuildingKind = iota
	Power
	School
	Station
	Hospital

	NumBuildingKinds = 5
)

func (k BuildingKind) String() string {
	switch k {
	case Research:
		return "research"
	case Power:
		return "power"
	case School:
		return "school"
	case Station:
		return "station"
	case Hospital:
		return "hospital"
	default:
		return fmt.Sprintf("building(%d)", int(k))
	}
}

// Construction is the sum type of what stands on a tile: EmptySite, Building or City.
// Consumers switch over the concrete types; there are no other implementations.
type Construction interface {
	isConstruction()
}

// EmptySite is undeveloped land that accumulates production
type EmptySite struct {
	Production Resources
	Resources  Resources
}

// Building is a constructed blueprint cell owned by a team
type Building struct {
	Team       int
	Kind       BuildingKind
	Side       Side
	Production Resources
	Resources  Resources
}

// City anchors a patch and can be captured
type City struct {
	Key        int
	Name       string
	Defense    int
	Team       int
	Production Resources
	Resources  Resources
}

func (EmptySite) isConstruction() {}
func (Building) isConstruction()  {}
func (City) isConstruction()      {}

// Harvest converts accumulated production into stored resources
func Harvest(c Construction) Construction {
	switch v := c.(type) {
	case EmptySite:
		v.Resources = v.Resources.Add(v.Production)
		return v
	case Building:
		v.Resources = v.Resources.Add(v.Production)
		return v
	case City:
		v.Resources = v.Resources.Add(v.Production)
		return v
	default:
		return c
	}
}

// Terrain is a single board tile.
// Capacity is the original occupancy, SpaceLeft what remains after the stack.
type Terrain struct {
	Position     Position
	Geography    Geography
	Capacity     int
	SpaceLeft    int
	Top          int // key of the top meeple or NoMeeple
	Construction Construction
}

// IsOccupied reports whether any meeple stands on the tile
func (t *Terrain) IsOccupied() bool { return t.Top != NoMeeple }

// HasSpace reports whether another meeple fits on the tile
func (t *Terrain) HasSpace() bool { return t.SpaceLeft > 0 }

// IsEmptySite reports whether the tile is undeveloped land
func (t *Terrain) IsEmptySite() bool {
	_, ok := t.Construction.(EmptySite)
	return ok
}

// City returns the city on the tile, if any
func (t *Terrain) City() (City, bool) {
	c, ok := t.Construction.(City)
	return c, ok
}

// Building returns the building on the tile, if any
func (t *Terrain) Building() (Building, bool) {
	b, ok := t.Construction.(Building)
	return b, ok
}

// NewTerrain creates an unoccupied empty tile
func NewTerrain(pos Position, geo Geography, capacity int) Terrain {
	return Terrain{
		Position:     pos,
		Geography:    geo,
		Capacity:     capacity,
		SpaceLeft:    capacity,
		Top:          NoMeeple,
		Construction: EmptySite{},
	}
}
