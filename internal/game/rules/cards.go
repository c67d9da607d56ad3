package rules

import (
	"math/rand"
	"slices"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// NewDecks builds one shuffled deck per building kind. Card points cycle 1, 2, 3.
func NewDecks(rng *rand.Rand, size int) [core.NumBuildingKinds][]core.Card {
	var decks [core.NumBuildingKinds][]core.Card
	for kind := range decks {
		deck := make([]core.Card, size)
		for i := range deck {
			deck[i] = core.Card{Kind: core.BuildingKind(kind), Points: i%3 + 1}
		}
		rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
		decks[kind] = deck
	}
	return decks
}

// draw moves the top card of kind's deck into team's hand. An empty deck is
// refilled from shuffled discards first; with neither nothing is drawn.
// The shuffle is seeded from the snapshot so replaying it reshuffles the same way.
func (cs *ConstructionSystem) draw(g *core.Game, team int, kind core.BuildingKind, pos core.Position) []core.Outcome {
	deck := g.Decks[kind]
	if len(deck) == 0 {
		if len(g.Discards[kind]) == 0 {
			cs.logger.Debug().Str("kind", kind.String()).Msg("Deck and discards empty, no card drawn")
			return nil
		}
		deck = slices.Clone(g.Discards[kind])
		reshuffleRNG(g).Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
		g.Discards[kind] = nil
		g.Reshuffles++
	}

	card := deck[0]
	g.Decks[kind] = deck[1:]

	player, discard := g.Players[team].Draw(card, cs.settings.HandLimit)
	g.Players[team] = player
	if discard != nil {
		g.Discards[discard.Kind] = append(slices.Clip(g.Discards[discard.Kind]), *discard)
	}

	cs.logger.Debug().
		Int("team", team).
		Str("kind", kind.String()).
		Int("points", card.Points).
		Msg("Card drawn")
	return []core.Outcome{{Kind: core.OutcomeCardDrawn, Team: team, Position: pos, Amount: card.Points}}
}

// reshuffleRNG derives the source for the next reshuffle of g
func reshuffleRNG(g *core.Game) *rand.Rand {
	return rand.New(rand.NewSource(g.Seed + int64(g.Reshuffles)))
}
