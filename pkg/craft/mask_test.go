package craft

import (
	"image"
	"image/color"
	"testing"
)

// TestMaskFromImage_Threshold 测试透明度阈值
func TestMaskFromImage_Threshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.NRGBA{A: 127})
	img.Set(1, 0, color.NRGBA{A: 128})
	img.Set(2, 0, color.NRGBA{A: 255})

	m := MaskFromImage(img, 127)
	if m.At(0, 0) {
		t.Error("alpha 127 should be transparent")
	}
	if !m.At(1, 0) || !m.At(2, 0) {
		t.Error("alpha above threshold should be opaque")
	}
	if m.Count() != 2 {
		t.Errorf("Count = %d, want 2", m.Count())
	}
}

// TestMaskFromImage_OffsetBounds 测试图片原点不在 (0,0) 时的坐标换算
func TestMaskFromImage_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 22))
	img.Set(11, 21, color.RGBA{A: 255})

	m := MaskFromImage(img, 127)
	if m.Width() != 2 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", m.Width(), m.Height())
	}
	if !m.At(1, 1) || m.Count() != 1 {
		t.Error("opaque pixel should map to (1, 1)")
	}
}

// TestMask_WideRows 测试超过 64 像素的行
func TestMask_WideRows(t *testing.T) {
	m := NewMask(130, 2)
	m.Set(0, 0)
	m.Set(64, 0)
	m.Set(129, 1)
	m.Set(130, 1) // 越界，忽略

	if !m.At(64, 0) || !m.At(129, 1) || m.At(63, 0) {
		t.Error("bit layout across words is wrong")
	}
	if m.At(-1, 0) || m.At(0, 2) {
		t.Error("out of bounds should be transparent")
	}
	if m.Count() != 3 {
		t.Errorf("Count = %d, want 3", m.Count())
	}
}

// TestMask_Overlap 测试遮罩重叠检测
func TestMask_Overlap(t *testing.T) {
	a := NewMask(4, 4)
	a.Set(3, 3)
	b := NewMask(4, 4)
	b.Set(0, 0)

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"像素重合", 3, 3, true},
		{"错开一格", 2, 3, false},
		{"完全不相交", 10, 10, false},
		{"负偏移", -3, -3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlap(b, tt.dx, tt.dy); got != tt.want {
				t.Errorf("Overlap(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}

	if !b.Overlap(a, -3, -3) {
		t.Error("overlap should be symmetric with negated offset")
	}
	if a.Overlap(nil, 0, 0) {
		t.Error("nil mask never overlaps")
	}
}

// TestRect 测试矩形辅助方法
func TestRect(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 30, Height: 40}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right/Bottom = %d/%d, want 40/60", r.Right(), r.Bottom())
	}
	if r.Image() != image.Rect(10, 20, 40, 60) {
		t.Errorf("Image() = %v", r.Image())
	}
	if !r.Intersects(Rect{Left: 39, Top: 59, Width: 5, Height: 5}) {
		t.Error("overlapping rects should intersect")
	}
	if r.Intersects(Rect{Left: 40, Top: 20, Width: 5, Height: 5}) {
		t.Error("touching edges should not intersect")
	}
}
