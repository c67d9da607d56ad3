package core

import "fmt"

// ActionType represents what the selected swarm does this turn
type ActionType int

const (
	ActionUp ActionType = iota
	ActionLeft
	ActionDown
	ActionRight
	ActionExplore
	ActionHold
)

// Actions lists every action in declaration order
var Actions = [...]ActionType{ActionUp, ActionLeft, ActionDown, ActionRight, ActionExplore, ActionHold}

// Direction returns the movement direction for the four move actions
func (a ActionType) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionLeft:
		return Left, true
	case ActionDown:
		return Down, true
	case ActionRight:
		return Right, true
	default:
		return 0, false
	}
}

// IsMove reports whether the action steps meeples across the board
func (a ActionType) IsMove() bool {
	_, ok := a.Direction()
	return ok
}

func (a ActionType) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionLeft:
		return "left"
	case ActionDown:
		return "down"
	case ActionRight:
		return "right"
	case ActionExplore:
		return "explore"
	case ActionHold:
		return "hold"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Intent is a team's request to act with a selection of meeple keys
type Intent struct {
	Team      int
	Action    ActionType
	Selection []int
}

func (i Intent) String() string {
	return fmt.Sprintf("team %d %s %v", i.Team, i.Action, i.Selection)
}
