package craft

import "image"

// Rect 战场坐标系中的轴对齐矩形
// Left/Top 为左上角，Width/Height 为尺寸
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right 返回右边界（不含）
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom 返回下边界（不含）
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Image 转换为标准库的 image.Rectangle
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right(), r.Bottom())
}

// Intersects 判断两个矩形是否重叠（边相接不算重叠）
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}
