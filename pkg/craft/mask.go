package craft

import (
	"image"
	"math/bits"
)

// Mask 逐像素的不透明遮罩，用于精确碰撞检测
// 每行按 64 位分组存储
type Mask struct {
	width  int
	height int
	stride int // 每行占用的 uint64 个数
	bits   []uint64
}

// NewMask 创建全空的遮罩
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 63) / 64
	return &Mask{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]uint64, stride*height),
	}
}

// MaskFromImage 根据图片透明度生成遮罩
// alpha 严格大于 threshold 的像素视为不透明
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Width 遮罩宽度
func (m *Mask) Width() int { return m.width }

// Height 遮罩高度
func (m *Mask) Height() int { return m.height }

// Set 将 (x, y) 标记为不透明，越界时忽略
func (m *Mask) Set(x, y int) {
	if !m.inBounds(x, y) {
		return
	}
	m.bits[y*m.stride+x/64] |= 1 << uint(x%64)
}

// At 返回 (x, y) 是否不透明，越界返回 false
func (m *Mask) At(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count 返回不透明像素个数
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap 判断 other 放在相对本遮罩 (offsetX, offsetY) 处时是否有不透明像素重叠
func (m *Mask) Overlap(other *Mask, offsetX, offsetY int) bool {
	if other == nil {
		return false
	}

	x0 := max(0, offsetX)
	y0 := max(0, offsetY)
	x1 := min(m.width, offsetX+other.width)
	y1 := min(m.height, offsetY+other.height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-offsetX, y-offsetY) {
				return true
			}
		}
	}
	return false
}

func (m *Mask) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}
