package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/planewar/pkg/components"
	"github.com/gonewx/planewar/pkg/craft"
	"github.com/gonewx/planewar/pkg/ecs"
)

// 遮罩叠加层颜色（预乘 alpha 的半透明红色）
var maskOverlayColor = color.RGBA{R: 128, A: 128}

// RenderSystem 绘制飞机精灵
//
// 飞机左上角即精灵绘制原点；ShowMask 打开时额外叠加碰撞遮罩和包围盒。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	showMask      bool

	// 每个遮罩只生成一次叠加图
	maskOverlays map[*craft.Mask]*ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, showMask bool) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		showMask:      showMask,
		maskOverlays:  make(map[*craft.Mask]*ebiten.Image),
	}
}

// SetShowMask 切换遮罩叠加显示
func (s *RenderSystem) SetShowMask(show bool) {
	s.showMask = show
}

// ShowMask 是否叠加显示遮罩
func (s *RenderSystem) ShowMask() bool {
	return s.showMask
}

// Draw 绘制所有可见精灵
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.visibleEntities() {
		pc, _ := ecs.GetComponent[*components.PlayerCraftComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		r := pc.Craft.Rect()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r.Left), float64(r.Top))
		screen.DrawImage(sprite.Image, op)

		if s.showMask && pc.Craft.Active() {
			s.drawMask(screen, pc.Craft.Mask(), r)
		}
	}
}

// visibleEntities 返回本帧需要绘制的实体（按 ID 排序）
func (s *RenderSystem) visibleEntities() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.PlayerCraftComponent, *components.SpriteComponent](s.entityManager)
	visible := ids[:0]
	for _, id := range ids {
		pc, _ := ecs.GetComponent[*components.PlayerCraftComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if pc.Craft == nil || sprite.Image == nil || sprite.Hidden {
			continue
		}
		visible = append(visible, id)
	}
	return visible
}

func (s *RenderSystem) drawMask(screen *ebiten.Image, mask *craft.Mask, r craft.Rect) {
	if mask == nil || mask.Width() == 0 || mask.Height() == 0 {
		return
	}
	overlay, ok := s.maskOverlays[mask]
	if !ok {
		overlay = ebiten.NewImage(mask.Width(), mask.Height())
		overlay.WritePixels(maskPixels(mask, maskOverlayColor))
		s.maskOverlays[mask] = overlay
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Left), float64(r.Top))
	screen.DrawImage(overlay, op)

	vector.StrokeRect(screen,
		float32(r.Left), float32(r.Top),
		float32(r.Width), float32(r.Height),
		1, color.RGBA{G: 255, A: 255}, false)
}

// maskPixels 把遮罩转换为 RGBA 像素，置位处填 c，其余透明
func maskPixels(mask *craft.Mask, c color.RGBA) []byte {
	w, h := mask.Width(), mask.Height()
	pix := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mask.At(x, y) {
				continue
			}
			i := 4 * (y*w + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return pix
}
