// cmd/genassets/main.go
// 生成占位飞机素材，没有美术资源时也能运行游戏
//
// 用法：
//
//	go run ./cmd/genassets --dir . --width 100 --height 124
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/config"
)

func main() {
	dir := pflag.String("dir", ".", "素材根目录，图片写入 <dir>/material/image")
	width := pflag.Int("width", 100, "图片宽度")
	height := pflag.Int("height", 124, "图片高度")
	force := pflag.Bool("force", false, "覆盖已存在的文件")
	verbose := pflag.Bool("verbose", false, "详细日志")
	pflag.Parse()

	logging.Setup(*verbose, os.Stderr)

	written, err := generate(*dir, *width, *height, *force)
	if err != nil {
		log.Fatal().Err(err).Msg("生成素材失败")
	}
	log.Info().Int("files", len(written)).Str("dir", filepath.Join(*dir, filepath.FromSlash(config.ImageDir))).Msg("done")
	for _, p := range written {
		fmt.Println(p)
	}
}

// generate 写入六张占位图片，返回实际写入的文件路径
// 已存在的文件在 force 为 false 时保留
func generate(baseDir string, w, h int, force bool) ([]string, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", w, h)
	}
	outDir := filepath.Join(baseDir, filepath.FromSlash(config.ImageDir))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	var written []string
	write := func(name string, img image.Image) error {
		p := filepath.Join(outDir, name)
		if !force {
			if _, err := os.Stat(p); err == nil {
				log.Debug().Str("path", p).Msg("exists, skipped")
				return nil
			}
		}
		if err := writePNG(p, img); err != nil {
			return err
		}
		written = append(written, p)
		return nil
	}

	// 待机帧：两帧只有尾焰长度不同
	for i, name := range config.HeroIdleFrameNames {
		if err := write(name, drawCraft(w, h, 1.0, h/8+i*h/16)); err != nil {
			return written, err
		}
	}
	// 爆炸帧：机身逐帧变淡
	for i, name := range config.HeroDestroyFrameNames {
		fade := 1.0 - float64(i+1)/float64(len(config.HeroDestroyFrameNames)+1)
		if err := write(name, drawCraft(w, h, fade, 0)); err != nil {
			return written, err
		}
	}
	return written, nil
}

// drawCraft 画一个朝上的三角形机身，背景透明
// opacity 为机身不透明度，flame 为尾焰高度（像素）
func drawCraft(w, h int, opacity float64, flame int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	body := color.NRGBA{R: 90, G: 160, B: 230, A: uint8(255 * opacity)}
	fire := color.NRGBA{R: 255, G: 160, B: 40, A: 255}

	bodyHeight := h - flame
	for y := 0; y < bodyHeight; y++ {
		// 每行宽度随 y 线性增加
		half := (y + 1) * w / (2 * max(bodyHeight, 1))
		for x := w/2 - half; x < w/2+half; x++ {
			img.SetNRGBA(x, y, body)
		}
	}
	for y := bodyHeight; y < h; y++ {
		for x := w/2 - w/10; x < w/2+w/10; x++ {
			img.SetNRGBA(x, y, fire)
		}
	}
	return img
}

func writePNG(p string, img image.Image) error {
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", p, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", p, err)
	}
	return f.Close()
}
