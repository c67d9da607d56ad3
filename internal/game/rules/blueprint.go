package rules

import "github.com/mitchelldurbincs/SwarmConquest/internal/game/core"

// Shape is a tetromino given as row/col offsets
type Shape [4]core.Position

// Shapes holds the footprint of every building kind
var Shapes = [core.NumBuildingKinds]Shape{
	core.Research: {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}, // I
	core.Power:    {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, // O
	core.School:   {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}}, // T
	core.Station:  {{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, // S
	core.Hospital: {{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}, // L
}

// reflect mirrors the shape across the vertical axis
func (s Shape) reflect() Shape {
	for i, c := range s {
		s[i] = core.Position{Row: c.Row, Col: -c.Col}
	}
	return s
}

// rotate turns the shape a quarter clockwise
func (s Shape) rotate() Shape {
	for i, c := range s {
		s[i] = core.Position{Row: c.Col, Col: -c.Row}
	}
	return s
}

// at places the shape so that its anchor cell lands on pos
func (s Shape) at(anchor int, pos core.Position) Shape {
	origin := s[anchor]
	for i, c := range s {
		s[i] = pos.Add(c.Sub(origin))
	}
	return s
}

// FindPattern searches the placements of kind's shape that cover pos:
// reflections outermost, then rotations, then anchor cells. It returns the
// first placement whose cells all hold an active-side meeple of team on an
// empty site that team exclusively controls.
func FindPattern(g *core.Game, team int, kind core.BuildingKind, pos core.Position) ([]core.Position, bool) {
	base := Shapes[kind]
	for reflection := 0; reflection < 2; reflection++ {
		shape := base
		if reflection == 1 {
			shape = shape.reflect()
		}
		for rotation := 0; rotation < 4; rotation++ {
			for anchor := range shape {
				cells := shape.at(anchor, pos)
				if placementFits(g, team, cells) {
					return cells[:], true
				}
			}
			shape = shape.rotate()
		}
	}
	return nil, false
}

func placementFits(g *core.Game, team int, cells Shape) bool {
	for _, cell := range cells {
		if !g.InBounds(cell) {
			return false
		}
		m := g.TopAt(cell)
		if m == nil || m.Team != team || m.Side != g.Turn.Side {
			return false
		}
		if !g.TerrainAt(cell).IsEmptySite() || !g.ExclusivelyControls(cell, team) {
			return false
		}
	}
	return true
}
