package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Map       MapConfig       `mapstructure:"map"`
	Meeples   MeeplesConfig   `mapstructure:"meeples"`
	Cards     CardsConfig     `mapstructure:"cards"`
	Buildings BuildingsConfig `mapstructure:"buildings"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	CityCapacity    int            `mapstructure:"city_capacity"`
	CityDefense     StatRange      `mapstructure:"city_defense"`
	Capacity        CapacityConfig `mapstructure:"capacity"`
	NeutralDensity  float64        `mapstructure:"neutral_density"`
	GrowthSharpness float64        `mapstructure:"growth_sharpness"`
	NoiseFrequency  float64        `mapstructure:"noise_frequency"`
	MaxProduction   int            `mapstructure:"max_production"`
}

// CapacityConfig holds the starting capacity of each geography kind
type CapacityConfig struct {
	Sea       int `mapstructure:"sea"`
	Desert    int `mapstructure:"desert"`
	Grassland int `mapstructure:"grassland"`
	Forest    int `mapstructure:"forest"`
	Mountain  int `mapstructure:"mountain"`
	Hills     int `mapstructure:"hills"`
	Wetland   int `mapstructure:"wetland"`
}

// StatRange is an inclusive integer range
type StatRange struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// MeepleStatsConfig holds the rolled stat ranges for new meeples
type MeepleStatsConfig struct {
	Strength   StatRange `mapstructure:"strength"`
	Resistance StatRange `mapstructure:"resistance"`
	Faith      StatRange `mapstructure:"faith"`
	Speed      StatRange `mapstructure:"speed"`
}

// MeeplesConfig holds stats for team starters and wild neutrals
type MeeplesConfig struct {
	Start   MeepleStatsConfig `mapstructure:"start"`
	Neutral MeepleStatsConfig `mapstructure:"neutral"`
}

// CardsConfig holds deck settings
type CardsConfig struct {
	DeckSize  int `mapstructure:"deck_size"`
	HandLimit int `mapstructure:"hand_limit"`
}

// BuildingsConfig holds construction rewards
type BuildingsConfig struct {
	BuildPoints int `mapstructure:"build_points"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig holds settings for the headless demo driver
type DemoConfig struct {
	Players    int   `mapstructure:"players"`
	BoardSize  int   `mapstructure:"board_size"`
	Seed       int64 `mapstructure:"seed"`
	MaxActions int   `mapstructure:"max_actions"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Map defaults
	v.SetDefault("game.map.city_capacity", 4)
	v.SetDefault("game.map.city_defense.min", 10)
	v.SetDefault("game.map.city_defense.max", 30)
	v.SetDefault("game.map.capacity.sea", 0)
	v.SetDefault("game.map.capacity.desert", 1)
	v.SetDefault("game.map.capacity.grassland", 4)
	v.SetDefault("game.map.capacity.forest", 3)
	v.SetDefault("game.map.capacity.mountain", 2)
	v.SetDefault("game.map.capacity.hills", 3)
	v.SetDefault("game.map.capacity.wetland", 2)
	v.SetDefault("game.map.neutral_density", 0.1)
	v.SetDefault("game.map.growth_sharpness", 3.0)
	v.SetDefault("game.map.noise_frequency", 0.15)
	v.SetDefault("game.map.max_production", 3)

	// Meeple defaults
	v.SetDefault("game.meeples.start.strength.min", 8)
	v.SetDefault("game.meeples.start.strength.max", 12)
	v.SetDefault("game.meeples.start.resistance.min", 20)
	v.SetDefault("game.meeples.start.resistance.max", 30)
	v.SetDefault("game.meeples.start.faith.min", 5)
	v.SetDefault("game.meeples.start.faith.max", 10)
	v.SetDefault("game.meeples.start.speed.min", 1)
	v.SetDefault("game.meeples.start.speed.max", 2)
	v.SetDefault("game.meeples.neutral.strength.min", 2)
	v.SetDefault("game.meeples.neutral.strength.max", 6)
	v.SetDefault("game.meeples.neutral.resistance.min", 5)
	v.SetDefault("game.meeples.neutral.resistance.max", 15)
	v.SetDefault("game.meeples.neutral.faith.min", 0)
	v.SetDefault("game.meeples.neutral.faith.max", 3)
	v.SetDefault("game.meeples.neutral.speed.min", 1)
	v.SetDefault("game.meeples.neutral.speed.max", 1)

	// Card and building defaults
	v.SetDefault("game.cards.deck_size", 9)
	v.SetDefault("game.cards.hand_limit", 5)
	v.SetDefault("game.buildings.build_points", 3)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Demo defaults
	v.SetDefault("demo.players", 2)
	v.SetDefault("demo.board_size", 12)
	v.SetDefault("demo.seed", 0)
	v.SetDefault("demo.max_actions", 200)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/swarm-conquest")
	}

	v.SetEnvPrefix("SWARM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults; other default
		// locations only tolerate ConfigFileNotFoundError.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig loads environment-specific config overlay
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	// An environment without an overlay runs on the base config
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetFloat64 gets a float64 value from config
func GetFloat64(key string) float64 {
	return v.GetFloat64(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Map.CityCapacity < 1 {
		return fmt.Errorf("game.map.city_capacity must be at least 1")
	}
	if err := validateRange(c.Game.Map.CityDefense, "game.map.city_defense", 0); err != nil {
		return err
	}
	capacities := map[string]int{
		"sea":       c.Game.Map.Capacity.Sea,
		"desert":    c.Game.Map.Capacity.Desert,
		"grassland": c.Game.Map.Capacity.Grassland,
		"forest":    c.Game.Map.Capacity.Forest,
		"mountain":  c.Game.Map.Capacity.Mountain,
		"hills":     c.Game.Map.Capacity.Hills,
		"wetland":   c.Game.Map.Capacity.Wetland,
	}
	for name, capacity := range capacities {
		if capacity < 0 {
			return fmt.Errorf("game.map.capacity.%s must be non-negative", name)
		}
	}
	if c.Game.Map.NeutralDensity < 0 || c.Game.Map.NeutralDensity > 1 {
		return fmt.Errorf("game.map.neutral_density must be between 0 and 1")
	}
	if c.Game.Map.GrowthSharpness <= 0 {
		return fmt.Errorf("game.map.growth_sharpness must be positive")
	}
	if c.Game.Map.NoiseFrequency <= 0 {
		return fmt.Errorf("game.map.noise_frequency must be positive")
	}
	if c.Game.Map.MaxProduction < 1 {
		return fmt.Errorf("game.map.max_production must be at least 1")
	}

	stats := map[string]MeepleStatsConfig{
		"game.meeples.start":   c.Game.Meeples.Start,
		"game.meeples.neutral": c.Game.Meeples.Neutral,
	}
	for prefix, s := range stats {
		if err := validateRange(s.Strength, prefix+".strength", 0); err != nil {
			return err
		}
		if err := validateRange(s.Resistance, prefix+".resistance", 1); err != nil {
			return err
		}
		if err := validateRange(s.Faith, prefix+".faith", 0); err != nil {
			return err
		}
		if err := validateRange(s.Speed, prefix+".speed", 1); err != nil {
			return err
		}
	}

	if c.Game.Cards.DeckSize < 0 {
		return fmt.Errorf("game.cards.deck_size must be non-negative")
	}
	if c.Game.Cards.HandLimit < 0 {
		return fmt.Errorf("game.cards.hand_limit must be non-negative")
	}
	if c.Game.Buildings.BuildPoints < 0 {
		return fmt.Errorf("game.buildings.build_points must be non-negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.Demo.Players < 1 {
		return fmt.Errorf("demo.players must be at least 1")
	}
	if c.Demo.BoardSize < 3 {
		return fmt.Errorf("demo.board_size must be at least 3")
	}
	if c.Demo.MaxActions < 0 {
		return fmt.Errorf("demo.max_actions must be non-negative")
	}

	return nil
}

func validateRange(r StatRange, name string, floor int) error {
	if r.Min < floor {
		return fmt.Errorf("%s.min must be at least %d", name, floor)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s.max must not be below %s.min", name, name)
	}
	return nil
}
