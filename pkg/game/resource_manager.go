package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/config"
)

// ResourceManager is responsible for centralized management of game images.
// It provides loading and caching mechanisms so that every file is decoded only once.
//
// The ResourceManager implements the following key features:
//   - Image loading and caching (PNG format support)
//   - Decoded source image caching (used for collision masks)
//   - Resource manifest (YAML) with ID -> path lookup and group loading
//   - Path resolution relative to the configured base directory
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// All loading happens on the game goroutine before or during Update, so no
// synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(cfg.BaseDir)
//	img, err := rm.LoadImage("material/image/hero1.png")
//	if err != nil {
//	    return err
//	}
type ResourceManager struct {
	baseDir     string                   // Directory that relative resource paths are resolved against
	imageCache  map[string]*ebiten.Image // Cache for drawable images: path -> Image
	sourceCache map[string]image.Image   // Cache for decoded images: path -> image.Image

	// YAML resource manifest
	config      *ResourceConfig   // Parsed manifest
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup

	logger zerolog.Logger
}

// NewResourceManager creates a ResourceManager rooted at baseDir.
// An empty baseDir means the current working directory.
func NewResourceManager(baseDir string) *ResourceManager {
	return &ResourceManager{
		baseDir:     baseDir,
		imageCache:  make(map[string]*ebiten.Image),
		sourceCache: make(map[string]image.Image),
		resourceMap: make(map[string]string),
		logger:      logging.For("ResourceManager"),
	}
}

// BaseDir returns the directory relative paths are resolved against.
func (rm *ResourceManager) BaseDir() string {
	return rm.baseDir
}

// resolve turns a slash-separated resource path into a file system path.
func (rm *ResourceManager) resolve(path string) string {
	p := filepath.FromSlash(path)
	if filepath.IsAbs(p) || rm.baseDir == "" {
		return p
	}
	return filepath.Join(rm.baseDir, p)
}

// LoadSourceImage loads and decodes an image file, keeping the decoded pixels.
// The result is cached; the same decoded image backs LoadImage.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
func (rm *ResourceManager) LoadSourceImage(path string) (image.Image, error) {
	if cached, exists := rm.sourceCache[path]; exists {
		return cached, nil
	}

	fullPath := rm.resolve(path)
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", fullPath, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", fullPath, err)
	}

	rm.sourceCache[path] = img
	return img, nil
}

// LoadImage loads an image file and converts it into a drawable ebiten.Image.
// If the image has already been loaded, it returns the cached version.
// The alpha channel of the source is preserved.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	src, err := rm.LoadSourceImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(src)
	rm.imageCache[path] = ebitenImg

	b := src.Bounds()
	rm.logger.Debug().Str("path", path).Int("width", b.Dx()).Int("height", b.Dy()).Msg("image loaded")
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadResourceConfig parses a YAML resource manifest.
// configPath is resolved against the base directory. Built-in groups missing
// from the file (such as "hero") are added back. A "hero" group that does not
// resolve to the six fixed frame paths under material/image is rejected.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	fullPath := rm.resolve(configPath)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", fullPath, err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", fullPath, err)
	}
	cfg.mergeDefaults()
	if err := cfg.validateHeroGroup(); err != nil {
		return fmt.Errorf("invalid resource config %s: %w", fullPath, err)
	}

	rm.config = &cfg
	rm.buildResourceMap()

	rm.logger.Info().Str("path", fullPath).Int("groups", len(cfg.Groups)).Msg("resource config loaded")
	return nil
}

// UseDefaultResourceConfig installs the built-in manifest.
func (rm *ResourceManager) UseDefaultResourceConfig() {
	rm.config = DefaultResourceConfig()
	rm.buildResourceMap()
}

// LoadResourceConfigOrDefault loads the optional manifest at config.ResourceConfigPath,
// falling back to the built-in manifest when the file does not exist.
// A file that exists but cannot be parsed is an error.
func (rm *ResourceManager) LoadResourceConfigOrDefault() error {
	err := rm.LoadResourceConfig(config.ResourceConfigPath)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		rm.logger.Debug().Msg("no resource config found, using built-in manifest")
		rm.UseDefaultResourceConfig()
		return nil
	}
	return err
}

// buildResourceMap constructs a mapping from resource IDs to file paths.
//
//	IMAGE_HERO1 -> material/image/hero1.png
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	for _, group := range rm.config.Groups {
		base := group.basePathOr(rm.config.BasePath)
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = resolveImagePath(base, img.Path)
		}
	}
}

// HasResource reports whether the manifest defines resourceID.
func (rm *ResourceManager) HasResource(resourceID string) bool {
	_, ok := rm.resourceMap[resourceID]
	return ok
}

// ResourcePath returns the path registered for resourceID.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// LoadImageByID loads an image using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadResourceGroup loads every image in a group defined by the manifest.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}
	return nil
}

// HasGroup reports whether the manifest defines groupName.
func (rm *ResourceManager) HasGroup(groupName string) bool {
	if rm.config == nil {
		return false
	}
	_, ok := rm.config.Groups[groupName]
	return ok
}
