package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/components"
)

// GameSettings 玩家偏好设置，跨会话保存
type GameSettings struct {
	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowMask   bool `yaml:"showMask"`   // 叠加显示碰撞遮罩（调试用）

	// 操作设置
	KeyLayout components.KeyLayout `yaml:"keyLayout"` // 键位方案
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen: false,
		ShowMask:   false,
		KeyLayout:  components.KeyLayoutBoth,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
	logger       zerolog.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，会回退到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       logging.For("SettingsManager"),
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn().Err(err).Msg("failed to load settings, using defaults")
	}
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if !loaded.KeyLayout.Valid() {
		sm.logger.Warn().Str("keyLayout", string(loaded.KeyLayout)).Msg("unknown key layout, using default")
		loaded.KeyLayout = DefaultSettings().KeyLayout
	}

	sm.settings = loaded
	sm.logger.Debug().Msg("settings loaded")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug().Msg("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowMask 设置是否叠加显示碰撞遮罩
func (sm *SettingsManager) SetShowMask(enabled bool) {
	sm.settings.ShowMask = enabled
}

// SetKeyLayout 设置键位方案，未知方案返回错误且不修改设置
func (sm *SettingsManager) SetKeyLayout(layout components.KeyLayout) error {
	if !layout.Valid() {
		return fmt.Errorf("unknown key layout %q", layout)
	}
	sm.settings.KeyLayout = layout
	return nil
}
