package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体本帧要绘制的图像
// 由 AnimationSystem 写入，RenderSystem 读取
type SpriteComponent struct {
	Image  *ebiten.Image
	Hidden bool // 为 true 时跳过绘制
}
