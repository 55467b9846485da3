package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// 运行时配置文件与环境变量约定
const (
	// ConfigName 配置文件名（不含扩展名），在 --config-dir 中查找 planewar.yaml
	ConfigName = "planewar"

	// EnvPrefix 环境变量前缀，如 PLANEWAR_BASE_DIR、PLANEWAR_PLAYFIELD_WIDTH
	EnvPrefix = "PLANEWAR"
)

// AppConfig 进程启动时解析一次的运行时配置
type AppConfig struct {
	// BaseDir 素材根目录，material/image 相对于它解析
	BaseDir string `mapstructure:"base_dir"`
	// Verbose 启用调试级别日志
	Verbose bool `mapstructure:"verbose"`

	Playfield PlayfieldConfig `mapstructure:"playfield"`
	Window    WindowConfig    `mapstructure:"window"`
	Respawn   RespawnConfig   `mapstructure:"respawn"`
}

// PlayfieldConfig 战场尺寸
type PlayfieldConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Title string  `mapstructure:"title"`
	Scale float64 `mapstructure:"scale"` // 窗口尺寸 = 战场尺寸 * Scale
}

// RespawnConfig 复活参数
type RespawnConfig struct {
	Delay float64 `mapstructure:"delay"` // 爆炸序列播完后等待的秒数
}

// SetDefaults 写入所有配置项的默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base_dir", ".")
	v.SetDefault("verbose", false)

	v.SetDefault("playfield.width", DefaultPlayfieldWidth)
	v.SetDefault("playfield.height", DefaultPlayfieldHeight)

	v.SetDefault("window.title", "飞机大战")
	v.SetDefault("window.scale", 1.0)

	v.SetDefault("respawn.delay", DefaultRespawnDelay)
}

// RegisterFlags 注册命令行参数
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config-dir", ".", "目录，其中的 planewar.yaml 会被读取（可选）")
	fs.String("base-dir", ".", "素材根目录（包含 material/image）")
	fs.Bool("verbose", false, "显示详细调试日志")
	fs.Int("width", DefaultPlayfieldWidth, "战场宽度（像素）")
	fs.Int("height", DefaultPlayfieldHeight, "战场高度（像素）")
	fs.Float64("scale", 1.0, "窗口缩放倍数")
}

// BindFlags 把命令行参数绑定到对应的配置键
// 只有显式传入的参数才会覆盖配置文件和环境变量
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"base_dir":         "base-dir",
		"verbose":          "verbose",
		"playfield.width":  "width",
		"playfield.height": "height",
		"window.scale":     "scale",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag --%s not registered", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load 读取配置文件、环境变量并返回校验后的 AppConfig
// configDir 中没有 planewar.yaml 不是错误，此时只使用默认值、环境变量和命令行参数
func Load(v *viper.Viper, configDir string) (*AppConfig, error) {
	SetDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查配置取值是否可用
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.BaseDir) == "" {
		return fmt.Errorf("base_dir must not be empty")
	}
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("invalid playfield size %dx%d", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Playfield.Height <= MarginBottom {
		return fmt.Errorf("playfield height %d leaves no room above the %dpx bottom margin", c.Playfield.Height, MarginBottom)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %g", c.Window.Scale)
	}
	if c.Respawn.Delay < 0 {
		return fmt.Errorf("respawn.delay must not be negative, got %g", c.Respawn.Delay)
	}
	return nil
}

// WindowSize 返回按缩放计算后的窗口尺寸
func (c *AppConfig) WindowSize() (int, int) {
	return int(float64(c.Playfield.Width) * c.Window.Scale), int(float64(c.Playfield.Height) * c.Window.Scale)
}
