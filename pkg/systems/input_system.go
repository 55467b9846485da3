package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/components"
	"github.com/gonewx/planewar/pkg/ecs"
)

// KeySource 键盘状态来源
// 游戏中使用 EbitenKeySource；测试中替换为可控实现
type KeySource interface {
	// IsKeyPressed 按键当前是否按住
	IsKeyPressed(key ebiten.Key) bool
	// IsKeyJustPressed 按键是否在本帧刚按下
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenKeySource 读取 Ebitengine 的真实键盘状态
type EbitenKeySource struct{}

func (EbitenKeySource) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (EbitenKeySource) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// directionKeys 每个方向对应的按键
type directionKeys struct {
	up, down, left, right []ebiten.Key
}

var (
	arrowKeys = directionKeys{
		up:    []ebiten.Key{ebiten.KeyArrowUp},
		down:  []ebiten.Key{ebiten.KeyArrowDown},
		left:  []ebiten.Key{ebiten.KeyArrowLeft},
		right: []ebiten.Key{ebiten.KeyArrowRight},
	}
	wasdKeys = directionKeys{
		up:    []ebiten.Key{ebiten.KeyW},
		down:  []ebiten.Key{ebiten.KeyS},
		left:  []ebiten.Key{ebiten.KeyA},
		right: []ebiten.Key{ebiten.KeyD},
	}
	bothKeys = directionKeys{
		up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	}
)

// keysFor 返回键位方案对应的按键，未知方案按 both 处理
func keysFor(layout components.KeyLayout) directionKeys {
	switch layout {
	case components.KeyLayoutArrows:
		return arrowKeys
	case components.KeyLayoutWASD:
		return wasdKeys
	default:
		return bothKeys
	}
}

// InputSystem 把键盘输入转换为飞机移动
//
// 每个 tick 对每个按住的方向调用一次移动操作（同一方向多个按键只算一次）。
// 已被击毁的飞机不响应移动。
type InputSystem struct {
	entityManager *ecs.EntityManager
	keys          KeySource
	debugKeys     bool // 启用 K（击毁）/ R（复位）调试按键
	logger        zerolog.Logger
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, keys KeySource, debugKeys bool) *InputSystem {
	return &InputSystem{
		entityManager: em,
		keys:          keys,
		debugKeys:     debugKeys,
		logger:        logging.For("InputSystem"),
	}
}

// Update 处理本帧输入
func (s *InputSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.PlayerCraftComponent, *components.ControlComponent](s.entityManager)
	for _, id := range ids {
		pc, _ := ecs.GetComponent[*components.PlayerCraftComponent](s.entityManager, id)
		control, _ := ecs.GetComponent[*components.ControlComponent](s.entityManager, id)
		plane := pc.Craft
		if plane == nil {
			continue
		}

		if s.debugKeys {
			// DEBUG: 模拟外部伤害与复活
			if s.keys.IsKeyJustPressed(ebiten.KeyK) && plane.Active() {
				plane.MarkDestroyed()
				s.logger.Debug().Uint64("entity", uint64(id)).Msg("DEBUG: craft destroyed (K)")
			}
			if s.keys.IsKeyJustPressed(ebiten.KeyR) {
				plane.Reset()
				s.logger.Debug().Uint64("entity", uint64(id)).Msg("DEBUG: craft reset (R)")
			}
		}

		if !plane.Active() {
			continue
		}

		k := keysFor(control.Layout)
		if s.anyPressed(k.up) {
			plane.MoveUp()
		}
		if s.anyPressed(k.down) {
			plane.MoveDown()
		}
		if s.anyPressed(k.left) {
			plane.MoveLeft()
		}
		if s.anyPressed(k.right) {
			plane.MoveRight()
		}
	}
}

func (s *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if s.keys.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
