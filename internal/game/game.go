package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilemaze/internal/config"
	"github.com/samdwyer/tilemaze/internal/entity"
	"github.com/samdwyer/tilemaze/internal/gamedata"
	"github.com/samdwyer/tilemaze/internal/telemetry"
	"github.com/samdwyer/tilemaze/internal/ui"
	"github.com/samdwyer/tilemaze/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	builder   *world.Builder
	enemyDefs *gamedata.EnemyRegistry
	cfg       *config.Config
	rng       *rand.Rand
	logger    *slog.Logger

	seed    int64
	level   int
	maze    *world.Maze
	player  *entity.Player
	enemies []*entity.Enemy
	state   State
	running bool
}

// New creates a new game instance drawing to the terminal.
func New(cfg *config.Config, logger *slog.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newGame(cfg, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, gamedata.MustLoadTileset())
	return g, nil
}

// newGame builds everything except the terminal.
func newGame(cfg *config.Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	return &Game{
		builder:   NewBuilder(cfg, rng, logger),
		enemyDefs: registry,
		cfg:       cfg,
		rng:       rng,
		logger:    logger,
		seed:      seed,
		level:     1,
		state:     StateExplore,
		running:   true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if err := g.loadLevel(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.maze, g.player, g.enemies, g.status())
		g.handleInput(ctx)

		if g.state == StateLevelComplete {
			g.level++
			if err := g.loadLevel(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// levelSeed spaces levels apart so their attempt seeds never overlap.
func (g *Game) levelSeed() int64 {
	return g.seed + int64(g.level-1)*int64(g.cfg.Acceptance.MaxAttempts)
}

// loadLevel replaces the maze and respawns all agents.
func (g *Game) loadLevel(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.load_level")
	defer span.End()

	m, err := g.builder.Build(ctx, g.cfg.Maze.Width, g.cfg.Maze.Height, g.levelSeed())
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("level %d: %w", g.level, err)
	}
	g.maze = m
	g.enemies = nil

	spawn, ok := m.Spawn()
	if !ok {
		g.player = nil
		g.state = StateNoSpawn
		span.SetAttributes(attribute.String("warning", "no spawn tile, level is not playable"))
		return nil
	}
	g.player = entity.NewPlayer(spawn)
	g.state = StateExplore

	for _, p := range world.RandomNavigableTiles(m, g.rng, g.cfg.Game.Enemies) {
		if def := g.enemyDefs.SpawnRandom(g.rng); def != nil {
			g.enemies = append(g.enemies, entity.NewEnemy(def, p))
		}
	}

	span.SetAttributes(
		attribute.Int("game.level", g.level),
		attribute.String("maze.id", m.ID.String()),
		attribute.Int("game.enemies", len(g.enemies)),
	)
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			g.seed++
			if err := g.loadLevel(ctx); err != nil {
				g.logger.Error("regenerate failed", "error", err)
				g.running = false
			}
		}
	}
}

// tryMove moves the player one sub-cell, then lets every enemy act.
func (g *Game) tryMove(dx, dy int) {
	if g.player == nil || g.state != StateExplore {
		return
	}
	if !g.player.TryMove(g.maze, dx, dy) {
		return
	}

	for _, e := range g.enemies {
		e.Wander(g.maze, g.rng)
	}

	here := g.player.Tile()
	for _, e := range g.enemies {
		if e.Position() == here {
			spawn, _ := g.maze.Spawn()
			g.player = entity.NewPlayer(spawn)
			return
		}
	}

	if goal, ok := g.maze.Goal(); ok && here == goal {
		g.state = StateLevelComplete
	}
}

// status returns the text for the line below the maze.
func (g *Game) status() string {
	if g.state == StateNoSpawn {
		return fmt.Sprintf("Level %d: no entrance on any edge. r: regenerate  q: quit", g.level)
	}
	return fmt.Sprintf("Level %d  seed %d  fullness %.0f%%  arrows: move  r: regenerate  q: quit",
		g.level, g.maze.Seed, g.maze.Fullness())
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
