package core

import "fmt"

const (
	// NoMeeple marks an empty Top or Below reference
	NoMeeple = -1
	// RemovedKey replaces the key of a meeple that left the game
	RemovedKey = -1
)

// Side is the face a meeple shows. Only meeples on the active side may act.
type Side int

const (
	NoSide Side = iota
	Heads
	Tails
)

// Flip returns the opposite face. NoSide stays NoSide.
func (s Side) Flip() Side {
	switch s {
	case Heads:
		return Tails
	case Tails:
		return Heads
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case NoSide:
		return "none"
	case Heads:
		return "heads"
	case Tails:
		return "tails"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Meeple is a single game piece.
// Key equals its slot in Game.Meeples and is never reused.
// Below links to the meeple beneath it on the same tile.
type Meeple struct {
	Key        int
	Position   Position
	Team       int
	Side       Side
	Strength   int
	Resistance int
	Faith      int
	Speed      int
	Below      int
}

// IsRemoved reports whether the meeple has left the game
func (m *Meeple) IsRemoved() bool { return m.Key == RemovedKey }

// Stats is the set of rolled attributes of a new meeple
type Stats struct {
	Strength   int
	Resistance int
	Faith      int
	Speed      int
}

// NewMeeple creates a live meeple with nothing beneath it
func NewMeeple(key int, pos Position, team int, side Side, s Stats) Meeple {
	return Meeple{
		Key:        key,
		Position:   pos,
		Team:       team,
		Side:       side,
		Strength:   s.Strength,
		Resistance: s.Resistance,
		Faith:      s.Faith,
		Speed:      s.Speed,
		Below:      NoMeeple,
	}
}
