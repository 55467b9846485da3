// Package craft 实现我方飞机实体
//
// PlayerCraft 持有飞机的图片帧、战场坐标和移动规则。
// 所有方法都在 Ebitengine 的 Update 协程中调用，不做任何加锁。
package craft

import (
	"image"
	"path"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/planewar/pkg/config"
)

// FrameLoader 加载飞机图片帧
// game.ResourceManager 实现了该接口；测试中可替换为内存实现
type FrameLoader interface {
	// LoadImage 加载可绘制的图片
	LoadImage(path string) (*ebiten.Image, error)
	// LoadSourceImage 加载解码后的原始图片（用于生成遮罩）
	LoadSourceImage(path string) (image.Image, error)
}

// PlayerCraft 玩家控制的飞机
//
// 状态机只有两个状态：
//   - Alive（active = true）：响应移动
//   - Destroyed（active = false）：由外部碰撞/伤害系统通过 MarkDestroyed 设置
//
// Reset 无条件回到 Alive。
type PlayerCraft struct {
	playfieldWidth  int
	playfieldHeight int

	rect   Rect
	speed  int
	active bool

	idleFrames    [config.HeroIdleFrameCount]*ebiten.Image
	destroyFrames [config.HeroDestroyFrameCount]*ebiten.Image
	mask          *Mask
}

// New 加载飞机素材并放到出生点
//
// 六张图片全部在这里加载（包括爆炸序列），任意一张失败都返回 *AssetLoadError，
// 不会返回部分初始化的飞机。
func New(loader FrameLoader, playfieldWidth, playfieldHeight int) (*PlayerCraft, error) {
	var idle [config.HeroIdleFrameCount]*ebiten.Image
	for i, name := range config.HeroIdleFrameNames {
		img, err := loadFrame(loader, name)
		if err != nil {
			return nil, err
		}
		idle[i] = img
	}

	// 遮罩取自第一帧待机图
	firstPath := assetPath(config.HeroIdleFrameNames[0])
	src, err := loader.LoadSourceImage(firstPath)
	if err != nil {
		return nil, &AssetLoadError{Asset: config.HeroIdleFrameNames[0], Path: firstPath, Err: err}
	}

	destroy, err := loadDestroyFrames(loader)
	if err != nil {
		return nil, err
	}

	bounds := idle[0].Bounds()
	c := &PlayerCraft{
		playfieldWidth:  playfieldWidth,
		playfieldHeight: playfieldHeight,
		rect: Rect{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		},
		speed:         config.DefaultCraftSpeed,
		idleFrames:    idle,
		destroyFrames: destroy,
		mask:          MaskFromImage(src, config.MaskAlphaThreshold),
	}
	c.Reset()
	return c, nil
}

// loadDestroyFrames 一次性加载全部爆炸序列帧
func loadDestroyFrames(loader FrameLoader) ([config.HeroDestroyFrameCount]*ebiten.Image, error) {
	var frames [config.HeroDestroyFrameCount]*ebiten.Image
	for i, name := range config.HeroDestroyFrameNames {
		img, err := loadFrame(loader, name)
		if err != nil {
			return frames, err
		}
		frames[i] = img
	}
	return frames, nil
}

func loadFrame(loader FrameLoader, name string) (*ebiten.Image, error) {
	p := assetPath(name)
	img, err := loader.LoadImage(p)
	if err != nil {
		return nil, &AssetLoadError{Asset: name, Path: p, Err: err}
	}
	return img, nil
}

func assetPath(name string) string {
	return path.Join(config.ImageDir, name)
}

// MoveUp 向上移动一步，不越过战场顶部
func (c *PlayerCraft) MoveUp() {
	if !c.active {
		return
	}
	c.rect.Top = max(c.rect.Top-c.speed, 0)
}

// MoveDown 向下移动一步，不进入底部预留区
func (c *PlayerCraft) MoveDown() {
	if !c.active {
		return
	}
	_, maxTop := c.maxPosition()
	c.rect.Top = min(c.rect.Top+c.speed, maxTop)
}

// MoveLeft 向左移动一步，不越过战场左边界
func (c *PlayerCraft) MoveLeft() {
	if !c.active {
		return
	}
	c.rect.Left = max(c.rect.Left-c.speed, 0)
}

// MoveRight 向右移动一步，不越过战场右边界
func (c *PlayerCraft) MoveRight() {
	if !c.active {
		return
	}
	maxLeft, _ := c.maxPosition()
	c.rect.Left = min(c.rect.Left+c.speed, maxLeft)
}

// Reset 回到出生点并恢复为存活状态
// 出生点每次重新计算；图片帧和外部的爆炸帧索引不受影响
func (c *PlayerCraft) Reset() {
	c.rect.Left, c.rect.Top = c.SpawnPosition()
	c.active = true
}

// MarkDestroyed 由外部碰撞/伤害系统调用，进入 Destroyed 状态
func (c *PlayerCraft) MarkDestroyed() {
	c.active = false
}

// SpawnPosition 返回出生点：水平居中，底部留出 MarginBottom
func (c *PlayerCraft) SpawnPosition() (left, top int) {
	left = (c.playfieldWidth - c.rect.Width) / 2
	top = c.playfieldHeight - c.rect.Height - config.MarginBottom
	return left, top
}

func (c *PlayerCraft) maxPosition() (int, int) {
	return config.GetPlayfieldBounds(c.playfieldWidth, c.playfieldHeight, c.rect.Width, c.rect.Height)
}

// Rect 返回当前位置（值拷贝）
func (c *PlayerCraft) Rect() Rect { return c.rect }

// Active 是否存活
func (c *PlayerCraft) Active() bool { return c.active }

// Speed 每步移动的像素数
func (c *PlayerCraft) Speed() int { return c.speed }

// Playfield 返回战场尺寸
func (c *PlayerCraft) Playfield() (width, height int) {
	return c.playfieldWidth, c.playfieldHeight
}

// IdleFrames 待机动画帧（返回副本，飞机独占原始句柄）
func (c *PlayerCraft) IdleFrames() []*ebiten.Image {
	return append([]*ebiten.Image(nil), c.idleFrames[:]...)
}

// DestroyFrames 爆炸序列帧，长度恒为 4
func (c *PlayerCraft) DestroyFrames() []*ebiten.Image {
	return append([]*ebiten.Image(nil), c.destroyFrames[:]...)
}

// Mask 第一帧待机图的不透明遮罩
func (c *PlayerCraft) Mask() *Mask { return c.mask }
