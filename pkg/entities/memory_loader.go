package entities

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/planewar/pkg/config"
)

// MemoryFrameLoader 内存中的飞机图片加载器，供各包测试使用
//
// 每张图片都是 Width x Height 的不透明矩形；Missing 中列出的文件名视为不存在。
type MemoryFrameLoader struct {
	Width, Height int
	Missing       map[string]bool

	Loaded []string // 按调用顺序记录 LoadImage 的路径
}

// NewMemoryFrameLoader 创建内存加载器
func NewMemoryFrameLoader(width, height int) *MemoryFrameLoader {
	return &MemoryFrameLoader{
		Width:   width,
		Height:  height,
		Missing: make(map[string]bool),
	}
}

func (m *MemoryFrameLoader) check(p string) error {
	if path.Dir(p) != config.ImageDir {
		return fmt.Errorf("open %s: %w", p, fs.ErrNotExist)
	}
	if m.Missing[path.Base(p)] {
		return fmt.Errorf("open %s: %w", p, fs.ErrNotExist)
	}
	return nil
}

// LoadImage 返回指定尺寸的空白可绘制图片
func (m *MemoryFrameLoader) LoadImage(p string) (*ebiten.Image, error) {
	m.Loaded = append(m.Loaded, p)
	if err := m.check(p); err != nil {
		return nil, err
	}
	return ebiten.NewImage(m.Width, m.Height), nil
}

// LoadSourceImage 返回完全不透明的原始图片
func (m *MemoryFrameLoader) LoadSourceImage(p string) (image.Image, error) {
	if err := m.check(p); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 255, A: 255})
		}
	}
	return img, nil
}
