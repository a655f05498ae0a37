// Package climber wraps the climber simulation as an arcade game.
// It loads the variant config, maps screen cells to world coordinates,
// draws the render list into a core.Screen and logs simulation events.
package climber

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hypnos/internal/config"
	"github.com/vovakirdan/hypnos/internal/core"
	"github.com/vovakirdan/hypnos/internal/games/climber/sim"
	"github.com/vovakirdan/hypnos/internal/registry"
)

// hudRows is the number of screen rows reserved for the status line.
const hudRows = 1

// Game implements registry.Game for one climber variant.
type Game struct {
	variant string
	title   string
	runtime core.RuntimeConfig
	cfg     config.ClimberConfig
	world   *sim.World
	frame   sim.Frame
	paused  bool
	cols    int // Size of the last rendered screen
	rows    int
}

var (
	// configPath stores the custom config path set via CLI
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger installs the logger used for simulation events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game for the given variant.
func New(variant string) *Game {
	title := "Hypnos"
	if variant == config.VariantClassic {
		title = "Hypnos Classic"
	}
	return &Game{variant: variant, title: title}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the config and starts a new session.
// An unusable config falls back to the built-in defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadClimber(g.variant, configPath)
	if err != nil {
		logger.Error("config rejected, using defaults", "game", g.variant, "err", err)
		cfg = config.DefaultFor(g.variant)
	}

	world, cfg := newWorld(g.variant, cfg, runtime.Seed)

	g.cfg = cfg
	g.world = world
	g.frame = world.Snapshot()
	logger.Info("session started", "game", g.variant, "seed", runtime.Seed,
		"platforms", len(world.Entities(sim.KindPlatform)),
		"enemies", len(world.Entities(sim.KindEnemy)),
		"collectibles", len(world.Entities(sim.KindCollectible)))
}

// newWorld builds a world from cfg, falling back to the variant defaults
// when the simulation rejects it. The defaults must always build.
func newWorld(variant string, cfg config.ClimberConfig, seed int64) (*sim.World, config.ClimberConfig) {
	world, err := sim.NewWorld(cfg, seed)
	if err == nil {
		return world, cfg
	}
	logger.Error("config rejected by simulation, using defaults", "game", variant, "err", err)

	cfg = config.DefaultFor(variant)
	world, err = sim.NewWorld(cfg, seed)
	if err != nil {
		panic(fmt.Sprintf("climber: built-in %s defaults are invalid: %v", variant, err))
	}
	return world, cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Outcome().Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Quit is honored even while paused
	if g.paused && !in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State()}
	}

	g.frame = g.world.Step(g.intents(in))
	g.logEvents(g.frame.Events)

	return core.StepResult{State: g.State()}
}

// intents translates platform actions into simulation intents.
func (g *Game) intents(in core.InputFrame) sim.Intents {
	si := sim.Intents{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Stop:  in.Has(core.ActionStop) || in.Has(core.ActionDown),
		Jump:  in.Has(core.ActionJump) || in.Has(core.ActionUp),
		Quit:  in.Has(core.ActionQuit),
	}

	if in.Has(core.ActionShoot) {
		var target core.Vec
		if in.Aim != nil {
			target = g.cellToWorld(in.Aim.X, in.Aim.Y)
		} else {
			// Straight up
			c := g.world.Player().Center()
			target = core.Vec{X: c.X, Y: c.Y - g.cfg.World.Height}
		}
		si.Shoot = &target
	}

	return si
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.frame.Status
	state := core.GameState{
		Score:    st.Score,
		Height:   g.world.Height(),
		Health:   st.Health,
		GameOver: st.Outcome.Terminal(),
		Paused:   g.paused,
	}
	if st.Outcome.Terminal() {
		state.EndReason = st.Outcome.String()
	}
	return state
}

// logEvents writes simulation events to the game logger.
func (g *Game) logEvents(events []sim.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventJumped, sim.EventLanded, sim.EventShot, sim.EventEnemyShot:
			logger.Debug(ev.Kind.String(), "tick", ev.Tick, "id", ev.ID)
		case sim.EventCollected:
			logger.Info("collected", "tick", ev.Tick, "tier", ev.Tier, "points", ev.Points)
		case sim.EventEnemyKilled, sim.EventEnemyContact:
			logger.Info(ev.Kind.String(), "tick", ev.Tick, "id", ev.ID, "points", ev.Points)
		case sim.EventPlayerHit:
			logger.Info("player hit", "tick", ev.Tick, "health", g.frame.Status.Health)
		case sim.EventBoostStarted, sim.EventBoostEnded:
			logger.Info(ev.Kind.String(), "tick", ev.Tick)
		case sim.EventSessionEnded:
			logger.Info("session ended", "game", g.variant, "tick", ev.Tick,
				"outcome", ev.Outcome, "score", g.frame.Status.Score, "height", g.world.Height())
		}
	}
}

// Register both variants with the registry
func init() {
	registry.Register(config.VariantClimber, func() registry.Game {
		return New(config.VariantClimber)
	})
	registry.Register(config.VariantClassic, func() registry.Game {
		return New(config.VariantClassic)
	})
}
