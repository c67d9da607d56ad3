package game

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/events"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/mapgen"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/rules"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/states"
)

// MinBoardSize is the smallest board with an interior tile for a city
const MinBoardSize = 3

// Engine is the turn engine. It holds no game: every operation takes a
// snapshot and returns a new one, so callers keep history by retention.
// Intents must be serialized; the engine's RNG is not safe for concurrent use.
type Engine struct {
	config GameConfig
	rng    *rand.Rand
	logger zerolog.Logger

	selector     *rules.SwarmSelector
	movement     *rules.MovementResolver
	construction *rules.ConstructionSystem
	legalMoves   *rules.LegalMoveCalculator
	eventBus     *events.EventBus
}

// NewEngine wires the resolvers around a shared RNG and logger
func NewEngine(cfg GameConfig) *Engine {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	if cfg.Rng == nil {
		logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Map.Capacity == nil {
		cfg.Map = mapgen.DefaultMapConfig(0, 0)
	}

	selector := rules.NewSwarmSelector(cfg.Logger)
	construction := rules.NewConstructionSystem(cfg.Logger, cfg.Rules)
	conflict := rules.NewConflictResolver(cfg.Logger)

	return &Engine{
		config:       cfg,
		rng:          cfg.Rng,
		logger:       logger,
		selector:     selector,
		movement:     rules.NewMovementResolver(cfg.Logger, conflict, construction),
		construction: construction,
		legalMoves:   rules.NewLegalMoveCalculator(selector),
		eventBus:     cfg.EventBus,
	}
}

// Setup generates a board for playerCount teams. The game is at round 0 with
// no side; Begin must be called before the first Play.
func (e *Engine) Setup(playerCount, boardSize int) (core.Game, error) {
	if playerCount < 1 {
		return core.Game{}, fmt.Errorf("%w: %d", core.ErrInvalidPlayerCount, playerCount)
	}
	if boardSize < MinBoardSize {
		return core.Game{}, fmt.Errorf("%w: %d, need at least %d", core.ErrInvalidBoardSize, boardSize, MinBoardSize)
	}

	mapCfg := e.config.Map
	mapCfg.Size = boardSize
	mapCfg.PlayerCount = playerCount
	m := mapgen.NewGenerator(mapCfg, e.rng, e.config.Logger).GenerateMap()

	players := make([]core.Player, playerCount+1)
	for team := range players {
		players[team].Team = team
	}
	players[core.NeutralTeam].Cities = slices.Clone(m.Cities)

	g := core.Game{
		ID:        e.newGameID(),
		BoardSize: boardSize,
		Players:   players,
		Terrains:  m.Terrains,
		Meeples:   m.Meeples,
		Decks:     rules.NewDecks(e.rng, e.config.DeckSize),
		Seed:      e.rng.Int63(),
		Turn:      core.Turn{Team: core.NeutralTeam, Side: core.NoSide},
	}
	for team, n := range g.LiveMeeples() {
		g.Players[team].SwarmSize = n
	}

	e.logger.Info().
		Str("game_id", g.ID).
		Int("players", playerCount).
		Int("board_size", boardSize).
		Int("meeples", len(g.Meeples)).
		Int("cities", len(m.Cities)).
		Msg("Game set up")
	return g, nil
}

// newGameID draws the ID from the engine RNG so seeded setups repeat exactly
func (e *Engine) newGameID() string {
	id, err := uuid.NewRandomFromReader(e.rng)
	if err != nil {
		return fmt.Sprintf("game_%d", e.rng.Int63())
	}
	return id.String()
}

// Begin hands the first turn of round 1 to the first active team, heads up
func (e *Engine) Begin(g core.Game) core.Game {
	if g.Over {
		return e.reject(g, core.Intent{Team: g.Turn.Team}, core.ErrGameOver)
	}

	w := g.Clone()
	for i := range w.Players {
		w.Players[i].UsedActions = 0
	}
	w.Turn = core.Turn{Round: 1, Side: core.Heads}
	w.Turn.Team = e.firstActiveTeam(&w)
	w = w.Record(core.Outcome{Kind: core.OutcomeStarted, Team: w.Turn.Team, Amount: w.Turn.Round})

	e.logger.Info().
		Str("game_id", w.ID).
		Int("team", w.Turn.Team).
		Msg("Game started")
	e.publish(events.NewGameStartedEvent(w.ID, w.PlayerCount(), w.BoardSize, w.Turn))
	return w
}

// firstActiveTeam is the first team in roster order with a meeple able to act
func (e *Engine) firstActiveTeam(g *core.Game) int {
	teams := g.ActiveTeams()
	for _, team := range teams {
		if e.legalMoves.HasAvailable(g, team) {
			return team
		}
	}
	if len(teams) == 0 {
		return core.NeutralTeam
	}
	return teams[0]
}

// Play validates intent against g and applies it. A rejected intent returns
// g unchanged apart from one appended rejection outcome and consumes no action.
func (e *Engine) Play(g core.Game, intent core.Intent) core.Game {
	if err := e.validate(&g, intent); err != nil {
		return e.reject(g, intent, err)
	}

	w, outcomes, err := e.resolve(g, intent)
	if err != nil {
		return e.reject(g, intent, err)
	}

	w.Players[intent.Team].UsedActions++
	e.logger.Debug().
		Int("team", intent.Team).
		Str("action", intent.Action.String()).
		Ints("selection", intent.Selection).
		Int("outcomes", len(outcomes)).
		Int("used_actions", w.Players[intent.Team].UsedActions).
		Msg("Intent accepted")
	e.publish(events.NewActionProcessedEvent(w.ID, intent, len(outcomes), w.Turn))

	if over, winner := e.checkGameOver(&w); over {
		w.Over = true
		outcomes = append(outcomes, core.Outcome{Kind: core.OutcomeGameOver, Team: winner, Amount: w.Turn.Round})
	} else {
		outcomes = append(outcomes, e.advance(&w)...)
	}

	e.publishOutcomes(&w, outcomes)
	return w.Record(outcomes...)
}

// validate runs the intent checks in order: phase, turn, actions left,
// selection present and live, selection inside the swarm of its first key
func (e *Engine) validate(g *core.Game, intent core.Intent) error {
	switch states.PhaseOf(g) {
	case states.PhaseSetup:
		return core.ErrGameNotStarted
	case states.PhaseEnded:
		return core.ErrGameOver
	}

	if intent.Team != g.Turn.Team {
		return fmt.Errorf("turn belongs to team %d: %w", g.Turn.Team, core.ErrNotYourTurn)
	}
	player := &g.Players[intent.Team]
	if !player.HasActionsLeft() {
		return core.WrapPlayerError(intent.Team, fmt.Sprintf("used %d of %d actions", player.UsedActions, player.ActionLimit()), core.ErrNoActionsLeft)
	}
	if len(intent.Selection) == 0 {
		return core.ErrNoSelection
	}
	for _, key := range intent.Selection {
		if g.Meeple(key) == nil {
			return fmt.Errorf("meeple %d: %w", key, core.ErrMeepleNotAvailable)
		}
	}

	// A swarm started on a boundary tile reaches past it, so any member may be the start
	outside := -1
	for _, start := range intent.Selection {
		swarm := e.selector.Select(g, g.Meeples[start].Position)
		i := slices.IndexFunc(intent.Selection, func(key int) bool { return !slices.Contains(swarm, key) })
		if i < 0 {
			return nil
		}
		if outside < 0 {
			outside = intent.Selection[i]
		}
	}
	return fmt.Errorf("meeple %d is outside the swarm: %w", outside, core.ErrNoSelection)
}

// resolve hands the intent to the resolver for its action
func (e *Engine) resolve(g core.Game, intent core.Intent) (core.Game, []core.Outcome, error) {
	if dir, ok := intent.Action.Direction(); ok {
		return e.movement.Move(g, intent.Team, dir, intent.Selection)
	}
	switch intent.Action {
	case core.ActionExplore:
		return e.construction.Explore(g, intent.Team, intent.Selection)
	case core.ActionHold:
		w, outcomes := e.movement.Hold(g, intent.Selection)
		return w, outcomes, nil
	default:
		return g, nil, fmt.Errorf("%s: %w", intent.Action, core.ErrUnknownAction)
	}
}

func (e *Engine) reject(g core.Game, intent core.Intent, err error) core.Game {
	out := core.RejectionFor(intent, err)
	e.logger.Warn().
		Err(out.Err).
		Str("kind", out.Kind.String()).
		Int("team", intent.Team).
		Int("round", g.Turn.Round).
		Msg("Intent rejected")
	e.publish(events.NewActionRejectedEvent(g.ID, intent, out, g.Turn))
	return g.Record(out)
}

// checkGameOver reports whether fewer than two swarms remain, and the winner
func (e *Engine) checkGameOver(g *core.Game) (bool, int) {
	return rules.NewWinConditionChecker(e.logger, g.PlayerCount()).CheckGame(g)
}

// SelectSwarm returns the keys of the swarm the acting team would move from pos
func (e *Engine) SelectSwarm(g core.Game, pos core.Position) []int {
	return e.selector.Select(&g, pos)
}

// AvailableMeeples returns the meeples of team able to act on the current side
func (e *Engine) AvailableMeeples(g core.Game, team int) []core.Meeple {
	return e.legalMoves.AvailableMeeples(&g, team)
}

// CandidateIntents lists the intents worth trying for the acting team
func (e *Engine) CandidateIntents(g core.Game) []core.Intent {
	if !states.PhaseOf(&g).CanReceiveActions() {
		return nil
	}
	return e.legalMoves.CandidateIntents(&g)
}

func (e *Engine) publish(event events.Event) {
	if e.eventBus != nil {
		e.eventBus.Publish(event)
	}
}

func (e *Engine) publishOutcomes(g *core.Game, outcomes []core.Outcome) {
	if e.eventBus == nil {
		return
	}
	for _, o := range outcomes {
		if event, ok := events.FromOutcome(g.ID, o, g.Turn); ok {
			e.eventBus.Publish(event)
		}
	}
}
