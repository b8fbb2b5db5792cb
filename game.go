package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/dungeon/common"
	"github.com/milk9111/dungeon/config"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/entity"
	"github.com/milk9111/dungeon/ecs/render"
	"github.com/milk9111/dungeon/ecs/system"
	"github.com/milk9111/dungeon/input"
	"github.com/milk9111/dungeon/levels"
	"github.com/milk9111/dungeon/locale"
	"github.com/milk9111/dungeon/prefabs"
	"github.com/milk9111/dungeon/ui"
	"go.uber.org/zap"
)

type Game struct {
	cfg       config.Config
	levelName string
	debug     bool
	logger    *zap.Logger

	source  input.Source
	binding *input.GamepadBinding
	gamepad *system.GamepadSystem
	input   *system.InputSystem
	reload  *system.ReloadSystem
	render  *system.RenderSystem
	watcher *prefabs.Watcher

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	hud       *ui.HUD

	frames int
}

// hudSync runs the HUD as the last system of a frame.
type hudSync struct {
	hud *ui.HUD
}

func (s hudSync) Update(w *ecs.World) {
	s.hud.Update(w)
}

func NewGame(cfg config.Config, levelName string, debug, watch bool, logger *zap.Logger) (*Game, error) {
	if levelName == "" {
		levelName = cfg.Level
	}
	source := input.EbitenSource{}
	binding := &input.GamepadBinding{}

	g := &Game{
		cfg:       cfg,
		levelName: levelName,
		debug:     debug,
		logger:    logger,
		source:    source,
		binding:   binding,
		gamepad:   system.NewGamepadSystem(source, binding, logger),
		input:     system.NewInputSystem(source, binding, cfg.Keys, cfg.Gamepad),
		reload:    system.NewReloadSystem(source, cfg.Keys.Reload),
		render:    system.NewRenderSystem(logger),
	}

	if err := g.loadLevel(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher(levels.Dir, prefabs.Dir)
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
			logger.Info("watching for changes", zap.Strings("dirs", []string{levels.Dir, prefabs.Dir}))
		}
	}
	return g, nil
}

// loadLevel builds a fresh world for the current level. The running world is
// only replaced when the new one loaded without error.
func (g *Game) loadLevel() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	world := ecs.NewWorld()
	loaded, err := entity.LoadLevelToWorld(world, lvl, entity.Overrides{
		MoveSpeed:        g.cfg.Player.MoveSpeed,
		CameraZoom:       g.cfg.Camera.Zoom,
		CameraSmoothness: g.cfg.Camera.Smoothness,
		LogCapacity:      g.cfg.Log.Capacity,
		LogVisible:       g.cfg.Log.Visible,
	})
	if err != nil {
		return fmt.Errorf("game: load level %q: %w", g.levelName, err)
	}
	for _, warning := range loaded.Warnings {
		g.logger.Warn("level", zap.String("level", g.levelName), zap.String("warning", warning))
	}

	physics := system.NewPhysicsSystem()
	hud := ui.NewHUD(world)

	var reload ecs.System
	if g.debug {
		reload = g.reload
	}

	g.world = world
	g.physics = physics
	g.hud = hud
	g.scheduler = ecs.NewScheduler(
		g.gamepad,
		g.input,
		system.NewMovementSystem(),
		physics,
		system.NewInteractionSystem(),
		system.NewDoorInteractionSystem(),
		system.NewDoorSyncSystem(g.logger),
		system.NewCursorIndicatorSystem(),
		system.NewAnimationSystem(),
		system.NewCameraSystem(common.BaseWidth, common.BaseHeight),
		system.NewGameLogSystem(),
		hudSync{hud: hud},
		reload,
	)

	ecs.Emit(world, ecs.LogMessage{Text: locale.Get("You enter the dungeon.")})
	g.logger.Info("level loaded",
		zap.String("level", g.levelName),
		zap.Int("doors", len(loaded.Doors)),
		zap.Stringer("player", loaded.Player),
	)
	return nil
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.scheduler.Update(g.world)

	if req, ok := system.PendingReload(g.world); ok {
		g.logger.Info("reloading level", zap.String("reason", req.Reason))
		render.Reset()
		if err := g.loadLevel(); err != nil {
			// Keep playing the current world; the request is dropped so a
			// broken file does not retry every frame.
			g.logger.Error("reload failed", zap.Error(err))
			system.ClearReload(g.world)
		}
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Debug("file changed", zap.String("path", path))
			system.RequestReload(g.world, "watch")
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawInteractionDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 10, common.BaseHeight-20)
	}

	g.hud.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
