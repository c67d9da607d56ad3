package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/SwarmConquest/internal/config"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/events"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/states"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", os.Getenv("APP_ENV"), "Environment overlay, merges config.<env>.yaml (empty for none)")
	players := flag.Int("players", -1, "Number of teams (-1 to use config default)")
	boardSize := flag.Int("board-size", -1, "Board side length (-1 to use config default)")
	seed := flag.Int64("seed", -1, "RNG seed (-1 to use config default, 0 for the clock)")
	maxActions := flag.Int("max-actions", -1, "Maximum intents to play (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	printEvery := flag.Int("print-every", 10, "Print the board every N accepted intents (0 disables)")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	// Flags override the config file
	if *players != -1 {
		config.Set("demo.players", *players)
	}
	if *boardSize != -1 {
		config.Set("demo.board_size", *boardSize)
	}
	if *seed != -1 {
		config.Set("demo.seed", *seed)
	}
	if *maxActions != -1 {
		config.Set("demo.max_actions", *maxActions)
	}
	if *logLevel != "" {
		config.Set("logging.level", *logLevel)
	}
	cfg := config.Get()

	setupLogging(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug().Interface("settings", config.GetViper().AllSettings()).Msg("Effective config")

	if *watch {
		config.WatchConfig(func() {
			setupLogging(config.Get().Logging.Level, config.Get().Logging.Format)
			log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded")
		})
	}

	demoSeed := cfg.Demo.Seed
	if demoSeed == 0 {
		demoSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(demoSeed))

	log.Info().
		Str("env", *env).
		Int("players", config.GetInt("demo.players")).
		Int("board_size", config.GetInt("demo.board_size")).
		Int64("seed", demoSeed).
		Int("max_actions", config.GetInt("demo.max_actions")).
		Str("log_format", config.GetString("logging.format")).
		Float64("neutral_density", config.GetFloat64("game.map.neutral_density")).
		Msg("Starting swarm demo")

	if err := run(rng, cfg.Demo.Players, cfg.Demo.BoardSize, cfg.Demo.MaxActions, *printEvery); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

func run(rng *rand.Rand, players, boardSize, maxActions, printEvery int) error {
	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("demo-logger", log.Logger, zerolog.DebugLevel))

	gameCfg := game.DefaultGameConfig(log.Logger, rng)
	gameCfg.EventBus = bus
	engine := game.NewEngine(gameCfg)

	g, err := engine.Setup(players, boardSize)
	if err != nil {
		return fmt.Errorf("setting up game: %w", err)
	}
	machine := states.NewStateMachine(g.ID, log.Logger, bus)
	observe := func(reason string) {
		if _, err := machine.Observe(&g, reason); err != nil {
			log.Error().Err(err).Msg("Unexpected phase change")
		}
	}

	fmt.Printf("Game %s\n%s\n", g.ID, game.Board(g))
	g = engine.Begin(g)
	observe("begin")

	accepted, rejected := 0, 0
	for step := 0; step < maxActions && !g.Over; step++ {
		intent, ok := game.RandomIntent(engine, g, rng)
		if !ok {
			log.Warn().Int("team", g.Turn.Team).Msg("Acting team has no swarm to select")
			break
		}

		logLen := len(g.Log)
		g = engine.Play(g, intent)
		if g.Log[logLen].Invalid() {
			rejected++
			// Holding always resolves, so the turn keeps moving
			if hold, ok := game.HoldIntent(engine, g); ok {
				g = engine.Play(g, hold)
			}
		} else {
			accepted++
		}
		observe(intent.Action.String())

		if printEvery > 0 && accepted > 0 && accepted%printEvery == 0 {
			fmt.Printf("\nAfter %d intents:\n%s", step+1, game.Board(g))
		}
	}

	fmt.Printf("\nFinal board:\n%s\n", game.Board(g))
	printStandings(g.Over, g.Log, game.Standings(g))

	log.Info().
		Int("accepted", accepted).
		Int("rejected", rejected).
		Int("round", g.Turn.Round).
		Int("transitions", len(machine.GetHistory())).
		Bool("over", g.Over).
		Msg("Demo finished")
	return nil
}

func printStandings(over bool, outcomes []core.Outcome, standings []game.Standing) {
	if over {
		last := outcomes[len(outcomes)-1]
		if last.Team > 0 {
			fmt.Printf("Game over! Team %d wins.\n", last.Team)
		} else {
			fmt.Println("Game over! No winner.")
		}
	}
	for _, s := range standings {
		fmt.Printf("Team %d: %d points, %d meeples, %d cities, %d buildings, %d resources, %d cards\n",
			s.Team, s.VictoryPoints, s.SwarmSize, s.Cities, s.Buildings, s.Resources, s.Cards)
	}
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
