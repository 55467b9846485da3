// Package app 提供游戏应用的核心包装器
//
// 负责把配置、资源管理器、设置和场景管理器组装成一个 ebiten.Game。
package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/config"
	"github.com/gonewx/planewar/pkg/game"
	"github.com/gonewx/planewar/pkg/scenes"
	"github.com/gonewx/planewar/pkg/systems"
)

// DataAppName gdata 存储目录名
const DataAppName = "planewar"

// 退出全屏后等待几帧再恢复窗口尺寸，让窗口管理器先处理状态切换
const windowSizeResetFrames = 3

// 固定步长，按 60 TPS 计
const tickDelta = 1.0 / 60.0

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// 全局热键：
//   - F11: 切换全屏（写入设置）
//   - M:   切换碰撞遮罩叠加显示（写入设置）
//   - ESC: 退出
type App struct {
	cfg             *config.AppConfig
	resourceManager *game.ResourceManager
	settings        *game.SettingsManager
	sceneManager    *game.SceneManager
	keys            systems.KeySource

	// 窗口操作，测试中替换
	setFullscreen func(bool)
	setWindowSize func(int, int)

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	logger zerolog.Logger
}

// NewApp 创建并初始化游戏应用
//
// 飞机素材缺失时返回的错误包装了 *craft.AssetLoadError。
// 设置存储不可用时降级为仅内存设置，不视为错误。
func NewApp(cfg *config.AppConfig) (*App, error) {
	logger := logging.For("App")

	gdataManager, err := gdata.Open(gdata.Config{AppName: DataAppName})
	if err != nil {
		logger.Warn().Err(err).Msg("settings storage unavailable, settings will not persist")
		gdataManager = nil
	}

	return newApp(cfg, gdataManager, systems.EbitenKeySource{})
}

func newApp(cfg *config.AppConfig, gdataManager *gdata.Manager, keys systems.KeySource) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	resourceManager := game.NewResourceManager(cfg.BaseDir)
	if err := resourceManager.LoadResourceConfigOrDefault(); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	a := &App{
		cfg:             cfg,
		resourceManager: resourceManager,
		settings:        game.NewSettingsManager(gdataManager),
		sceneManager:    game.NewSceneManager(),
		keys:            keys,
		setFullscreen:   ebiten.SetFullscreen,
		setWindowSize:   ebiten.SetWindowSize,
		logger:          logging.For("App"),
	}

	a.sceneManager.SetSceneFactory(func() (game.Scene, error) {
		scene, err := scenes.NewGameScene(resourceManager, cfg, a.settings.GetSettings(), keys)
		if err != nil {
			return nil, err
		}
		return scene, nil
	})
	if err := a.sceneManager.NewSession(); err != nil {
		return nil, err
	}

	a.logger.Info().
		Str("baseDir", cfg.BaseDir).
		Int("width", cfg.Playfield.Width).
		Int("height", cfg.Playfield.Height).
		Msg("app initialized")
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			a.setWindowSize(a.cfg.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	if a.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		a.logger.Info().Msg("quit requested")
		return ebiten.Termination
	}
	if a.keys.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if a.keys.IsKeyJustPressed(ebiten.KeyM) {
		a.toggleMask()
	}

	a.sceneManager.Update(tickDelta)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !a.settings.GetSettings().Fullscreen
	a.setFullscreen(fullscreen)
	if !fullscreen {
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = windowSizeResetFrames
	}

	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
	a.logger.Debug().Bool("fullscreen", fullscreen).Msg("fullscreen toggled")
}

func (a *App) toggleMask() {
	show := !a.settings.GetSettings().ShowMask
	a.settings.SetShowMask(show)
	if scene, ok := a.sceneManager.GetCurrentScene().(*scenes.GameScene); ok {
		scene.SetShowMask(show)
	}
	a.saveSettings()
	a.logger.Debug().Bool("showMask", show).Msg("mask overlay toggled")
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to save settings")
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回战场尺寸作为逻辑屏幕尺寸
// 与实际窗口大小无关，Ebitengine 会自动缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Playfield.Width, a.cfg.Playfield.Height
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Close 关闭当前场景
func (a *App) Close() {
	a.sceneManager.Close()
}
