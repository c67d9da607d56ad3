package game

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/config"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/events"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/mapgen"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/rules"
)

// GameConfig holds everything an Engine is built from
type GameConfig struct {
	Logger   zerolog.Logger
	Rng      *rand.Rand       // nil seeds from the clock
	EventBus *events.EventBus // nil disables events
	Map      mapgen.MapConfig // Size and PlayerCount are set by Setup
	Rules    rules.Settings
	DeckSize int
}

// DefaultGameConfig reads the game settings from the global config
func DefaultGameConfig(logger zerolog.Logger, rng *rand.Rand) GameConfig {
	return GameConfigFrom(config.Get(), logger, rng)
}

// GameConfigFrom converts loaded settings into an engine configuration
func GameConfigFrom(c *config.Config, logger zerolog.Logger, rng *rand.Rand) GameConfig {
	m := c.Game.Map
	return GameConfig{
		Logger: logger,
		Rng:    rng,
		Map: mapgen.MapConfig{
			CityCapacity: m.CityCapacity,
			CityDefense:  statRange(m.CityDefense),
			Capacity: map[core.Geography]int{
				core.Sea:       m.Capacity.Sea,
				core.Desert:    m.Capacity.Desert,
				core.Grassland: m.Capacity.Grassland,
				core.Forest:    m.Capacity.Forest,
				core.Mountain:  m.Capacity.Mountain,
				core.Hills:     m.Capacity.Hills,
				core.Wetland:   m.Capacity.Wetland,
			},
			NeutralDensity:  m.NeutralDensity,
			GrowthSharpness: m.GrowthSharpness,
			NoiseFrequency:  m.NoiseFrequency,
			MaxProduction:   m.MaxProduction,
			StartStats:      meepleStats(c.Game.Meeples.Start),
			NeutralStats:    meepleStats(c.Game.Meeples.Neutral),
		},
		Rules: rules.Settings{
			HandLimit:   c.Game.Cards.HandLimit,
			BuildPoints: c.Game.Buildings.BuildPoints,
		},
		DeckSize: c.Game.Cards.DeckSize,
	}
}

func statRange(r config.StatRange) mapgen.StatRange {
	return mapgen.StatRange{Min: r.Min, Max: r.Max}
}

func meepleStats(s config.MeepleStatsConfig) mapgen.MeepleStats {
	return mapgen.MeepleStats{
		Strength:   statRange(s.Strength),
		Resistance: statRange(s.Resistance),
		Faith:      statRange(s.Faith),
		Speed:      statRange(s.Speed),
	}
}
