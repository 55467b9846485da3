// Package scenes 包含游戏的各个场景
package scenes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/config"
	"github.com/gonewx/planewar/pkg/craft"
	"github.com/gonewx/planewar/pkg/ecs"
	"github.com/gonewx/planewar/pkg/entities"
	"github.com/gonewx/planewar/pkg/game"
	"github.com/gonewx/planewar/pkg/systems"
)

// ErrPlayfieldTooSmall 战场容不下飞机精灵
var ErrPlayfieldTooSmall = errors.New("playfield too small for player craft")

// 没有背景图时的填充色（夜空蓝）
var backgroundFill = color.RGBA{R: 16, G: 24, B: 48, A: 255}

// GameScene 战场场景
//
// 每个 tick 的系统顺序：Input -> Animation -> Respawn -> 清理实体。
type GameScene struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager

	inputSystem     *systems.InputSystem
	animationSystem *systems.AnimationSystem
	respawnSystem   *systems.RespawnSystem
	renderSystem    *systems.RenderSystem

	playerID ecs.EntityID
	player   *craft.PlayerCraft

	background      *ebiten.Image // 可选背景图，nil 时使用 backgroundFill
	playfieldWidth  int
	playfieldHeight int

	logger zerolog.Logger
}

// NewGameScene 创建战场场景并加载我方飞机
//
// 飞机素材加载失败时返回 *craft.AssetLoadError；战场放不下飞机时返回 ErrPlayfieldTooSmall。
// 背景图是可选的，加载失败只记录警告。
func NewGameScene(rm *game.ResourceManager, cfg *config.AppConfig, settings *game.GameSettings, keys systems.KeySource) (*GameScene, error) {
	s := &GameScene{
		entityManager:   ecs.NewEntityManager(),
		resourceManager: rm,
		playfieldWidth:  cfg.Playfield.Width,
		playfieldHeight: cfg.Playfield.Height,
		logger:          logging.For("GameScene"),
	}

	playerID, player, err := entities.NewPlayerCraftEntity(
		s.entityManager, rm,
		cfg.Playfield.Width, cfg.Playfield.Height,
		settings.KeyLayout, cfg.Respawn.Delay,
	)
	if err != nil {
		return nil, err
	}

	r := player.Rect()
	maxLeft, maxTop := config.GetPlayfieldBounds(cfg.Playfield.Width, cfg.Playfield.Height, r.Width, r.Height)
	if maxLeft < 0 || maxTop < 0 {
		return nil, fmt.Errorf("%w: playfield %dx%d (bottom margin %d), craft %dx%d",
			ErrPlayfieldTooSmall, cfg.Playfield.Width, cfg.Playfield.Height, config.MarginBottom, r.Width, r.Height)
	}
	s.playerID = playerID
	s.player = player

	s.loadBackground()

	s.inputSystem = systems.NewInputSystem(s.entityManager, keys, cfg.Verbose)
	s.animationSystem = systems.NewAnimationSystem(s.entityManager)
	s.respawnSystem = systems.NewRespawnSystem(s.entityManager)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, settings.ShowMask)

	s.logger.Info().
		Int("width", r.Width).Int("height", r.Height).
		Int("left", r.Left).Int("top", r.Top).
		Str("keyLayout", string(settings.KeyLayout)).
		Msg("player craft ready")
	return s, nil
}

// loadBackground 加载清单中的背景分组（如果有）
func (s *GameScene) loadBackground() {
	if !s.resourceManager.HasGroup(game.BackgroundGroup) {
		return
	}
	if err := s.resourceManager.LoadResourceGroup(game.BackgroundGroup); err != nil {
		s.logger.Warn().Err(err).Msg("background not available, using fill color")
		return
	}
	s.background = s.resourceManager.GetImageByID(game.BackgroundImageID)
}

// Update 推进一个 tick
func (s *GameScene) Update(deltaTime float64) {
	s.inputSystem.Update()
	s.animationSystem.Update()
	s.respawnSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 先画背景再画精灵
func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.background != nil {
		screen.DrawImage(s.background, nil)
	} else {
		screen.Fill(backgroundFill)
	}
	s.renderSystem.Draw(screen)
}

// SetShowMask 切换碰撞遮罩叠加显示
func (s *GameScene) SetShowMask(show bool) {
	s.renderSystem.SetShowMask(show)
}

// Close 实现 game.Closer
func (s *GameScene) Close() {
	s.logger.Debug().Int("entities", s.entityManager.EntityCount()).Msg("scene closed")
}

// Player 返回我方飞机
func (s *GameScene) Player() *craft.PlayerCraft {
	return s.player
}

// PlayerID 返回我方飞机实体 ID
func (s *GameScene) PlayerID() ecs.EntityID {
	return s.playerID
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// HasBackground 是否加载了背景图
func (s *GameScene) HasBackground() bool {
	return s.background != nil
}
