package components

// KeyLayout 键位方案
type KeyLayout string

const (
	// KeyLayoutArrows 方向键
	KeyLayoutArrows KeyLayout = "arrows"
	// KeyLayoutWASD W/A/S/D
	KeyLayoutWASD KeyLayout = "wasd"
	// KeyLayoutBoth 方向键和 WASD 同时生效
	KeyLayoutBoth KeyLayout = "both"
)

// Valid 是否为已知键位方案
func (l KeyLayout) Valid() bool {
	switch l {
	case KeyLayoutArrows, KeyLayoutWASD, KeyLayoutBoth:
		return true
	}
	return false
}

// ControlComponent 标记实体由键盘控制
type ControlComponent struct {
	Layout KeyLayout
}
