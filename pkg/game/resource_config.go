package game

import (
	"fmt"
	"path"

	"github.com/gonewx/planewar/pkg/config"
)

// 资源 ID 约定
const (
	// HeroGroup 我方飞机的六张图片
	HeroGroup = "hero"
	// BackgroundGroup 可选的背景图分组
	BackgroundGroup = "background"
	// BackgroundImageID 背景图资源 ID
	BackgroundImageID = "IMAGE_BACKGROUND"
)

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of material/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: material/image
//	groups:
//	  group_name:
//	    images: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources, relative to base_dir
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of images that are loaded together.
//
// Example:
//
//	background:
//	  images:
//	    - id: IMAGE_BACKGROUND
//	      path: background
type ResourceGroup struct {
	BasePath string          `yaml:"base_path,omitempty"` // Overrides the manifest base path for this group
	Images   []ImageResource `yaml:"images"`
}

// basePathOr returns the group's own base path, or fallback when unset.
func (g ResourceGroup) basePathOr(fallback string) string {
	if g.BasePath != "" {
		return g.BasePath
	}
	return fallback
}

// ImageResource represents a single image resource definition.
//
// Fields:
//   - ID: Unique identifier for the image (e.g., "IMAGE_HERO1")
//   - Path: Relative path from base_path; ".png" is appended when there is no extension
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// DefaultResourceConfig 返回内置资源清单，只包含 hero 分组
// 文件名与 craft 包加载的固定文件名一致
func DefaultResourceConfig() *ResourceConfig {
	images := make([]ImageResource, 0, config.HeroIdleFrameCount+config.HeroDestroyFrameCount)
	for i, name := range config.HeroIdleFrameNames {
		images = append(images, ImageResource{ID: heroImageID("IMAGE_HERO", i), Path: name})
	}
	for i, name := range config.HeroDestroyFrameNames {
		images = append(images, ImageResource{ID: heroImageID("IMAGE_HERO_BLOWUP_N", i), Path: name})
	}

	return &ResourceConfig{
		Version:  "1.0",
		BasePath: config.ImageDir,
		Groups: map[string]ResourceGroup{
			HeroGroup: {BasePath: config.ImageDir, Images: images},
		},
	}
}

func heroImageID(prefix string, index int) string {
	return prefix + string(rune('1'+index))
}

// mergeDefaults 补全清单里缺失的内置分组
func (c *ResourceConfig) mergeDefaults() {
	defaults := DefaultResourceConfig()
	if c.BasePath == "" {
		c.BasePath = defaults.BasePath
	}
	if c.Groups == nil {
		c.Groups = make(map[string]ResourceGroup)
	}
	for name, group := range defaults.Groups {
		if _, exists := c.Groups[name]; !exists {
			c.Groups[name] = group
		}
	}
}

// validateHeroGroup 检查 hero 分组是否仍指向飞机实际加载的六个固定文件
// craft 包按固定路径加载图片，清单无法改变它们的位置，因此不一致的清单直接拒绝
func (c *ResourceConfig) validateHeroGroup() error {
	group, ok := c.Groups[HeroGroup]
	if !ok {
		return fmt.Errorf("group %q is missing", HeroGroup)
	}

	want := DefaultResourceConfig().Groups[HeroGroup]
	got := make(map[string]string, len(group.Images))
	base := group.basePathOr(c.BasePath)
	for _, img := range group.Images {
		got[img.ID] = resolveImagePath(base, img.Path)
	}
	if len(got) != len(want.Images) {
		return fmt.Errorf("group %q must list exactly %d images, got %d", HeroGroup, len(want.Images), len(got))
	}
	for _, img := range want.Images {
		wantPath := resolveImagePath(want.BasePath, img.Path)
		if got[img.ID] != wantPath {
			return fmt.Errorf("group %q must map %s to %s, got %q", HeroGroup, img.ID, wantPath, got[img.ID])
		}
	}
	return nil
}

// resolveImagePath 拼接路径，没有扩展名时默认 .png
func resolveImagePath(basePath, relativePath string) string {
	p := buildFullPath(basePath, relativePath)
	if path.Ext(p) == "" {
		p += ".png"
	}
	return p
}

// buildFullPath joins the manifest base path with a resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	return path.Join(basePath, relativePath)
}
