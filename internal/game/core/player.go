package core

import (
	"fmt"
	"slices"
)

// NeutralTeam is the roster slot for unowned cities and wild meeples
const NeutralTeam = 0

// BlueprintPhase is a player's progress on one building kind
type BlueprintPhase int

const (
	NotBuilt BlueprintPhase = iota
	Blueprint
	Built
)

func (p BlueprintPhase) String() string {
	switch p {
	case NotBuilt:
		return "not-built"
	case Blueprint:
		return "blueprint"
	case Built:
		return "built"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Card is drawn from a building kind's deck when its pattern is matched again
type Card struct {
	Kind   BuildingKind
	Points int
}

// Player is a roster entry. Team equals its index in Game.Players.
type Player struct {
	Team          int
	Cities        []int // city keys
	Resources     Resources
	Hand          []Card
	Phases        [NumBuildingKinds]BlueprintPhase
	UsedActions   int
	VictoryPoints int
	SwarmSize     int // live meeples on this team
}

// GetID returns the team index
func (p Player) GetID() int { return p.Team }

// IsAlive reports whether the team still has meeples on the board
func (p Player) IsAlive() bool { return p.SwarmSize > 0 }

// ActionLimit is the number of actions available per round
func (p *Player) ActionLimit() int { return len(p.Cities) + 1 }

// HasActionsLeft reports whether another action may be taken this round
func (p *Player) HasActionsLeft() bool { return p.UsedActions < p.ActionLimit() }

// OwnsCity reports whether the city key is in the player's list
func (p *Player) OwnsCity(key int) bool { return slices.Contains(p.Cities, key) }

// GainCity returns the player with the city key appended.
// The backing array is never shared with earlier snapshots.
func (p Player) GainCity(key int) Player {
	p.Cities = append(slices.Clip(p.Cities), key)
	return p
}

// LoseCity returns the player without the city key
func (p Player) LoseCity(key int) Player {
	p.Cities = slices.DeleteFunc(slices.Clone(p.Cities), func(k int) bool { return k == key })
	return p
}

// Draw returns the player holding the card. When the hand exceeds limit the
// oldest card is returned as the discard.
func (p Player) Draw(c Card, limit int) (Player, *Card) {
	p.Hand = append(slices.Clip(p.Hand), c)
	p.VictoryPoints += c.Points
	if limit > 0 && len(p.Hand) > limit {
		discard := p.Hand[0]
		p.Hand = slices.Clone(p.Hand[1:])
		return p, &discard
	}
	return p, nil
}
