package core

import "fmt"

// Position represents a tile on the square game board.
// Row 0 is the top edge, Col 0 the left edge.
type Position struct {
	Row, Col int
}

// NewPosition creates a new position with the given row and column
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// FromIndex creates a position from a flat board index using row-major ordering
func FromIndex(idx, size int) Position {
	return Position{
		Row: idx / size,
		Col: idx % size,
	}
}

// IsValid checks if the position is on a size x size board
func (p Position) IsValid(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// ToIndex converts the position to a flat board index using row-major ordering
func (p Position) ToIndex(size int) int {
	return p.Row*size + p.Col
}

// IsBorder reports whether the position lies on the outermost ring of the board
func (p Position) IsBorder(size int) bool {
	return p.Row == 0 || p.Col == 0 || p.Row == size-1 || p.Col == size-1
}

// Add returns a new position that is the sum of this position and another
func (p Position) Add(other Position) Position {
	return Position{
		Row: p.Row + other.Row,
		Col: p.Col + other.Col,
	}
}

// Sub returns a new position that is the difference between this position and another
func (p Position) Sub(other Position) Position {
	return Position{
		Row: p.Row - other.Row,
		Col: p.Col - other.Col,
	}
}

// Neighbors returns the four orthogonal neighbors of this position
func (p Position) Neighbors() []Position {
	return []Position{
		{Row: p.Row - 1, Col: p.Col}, // Up
		{Row: p.Row, Col: p.Col + 1}, // Right
		{Row: p.Row + 1, Col: p.Col}, // Down
		{Row: p.Row, Col: p.Col - 1}, // Left
	}
}

// ValidNeighbors returns only the orthogonal neighbors that are on the board
func (p Position) ValidNeighbors(size int) []Position {
	valid := make([]Position, 0, 4)
	for _, n := range p.Neighbors() {
		if n.IsValid(size) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Surrounding returns the eight neighbors of this position, row by row
func (p Position) Surrounding() []Position {
	out := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out = append(out, Position{Row: p.Row + dr, Col: p.Col + dc})
		}
	}
	return out
}

// ValidSurrounding returns only the eight-neighbors that are on the board
func (p Position) ValidSurrounding(size int) []Position {
	valid := make([]Position, 0, 8)
	for _, n := range p.Surrounding() {
		if n.IsValid(size) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Equal checks if two positions are equal
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction represents a cardinal direction
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// DirectionVectors provides position offsets for each direction
var DirectionVectors = map[Direction]Position{
	Up:    {Row: -1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Down:  {Row: 1, Col: 0},
	Right: {Row: 0, Col: 1},
}

// Move returns a new position moved one step in the given direction
func (p Position) Move(direction Direction) Position {
	if offset, ok := DirectionVectors[direction]; ok {
		return p.Add(offset)
	}
	return p
}

// Forward reports whether the direction increases the board index.
// Swarms moving forward are processed from the highest index down.
func (d Direction) Forward() bool {
	return d == Down || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}
