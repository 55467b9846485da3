package entities

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/gonewx/planewar/pkg/components"
	"github.com/gonewx/planewar/pkg/config"
	"github.com/gonewx/planewar/pkg/craft"
	"github.com/gonewx/planewar/pkg/ecs"
)

// TestNewPlayerCraftEntity 测试飞机实体包含全部组件
func TestNewPlayerCraftEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	loader := NewMemoryFrameLoader(100, 75)

	id, plane, err := NewPlayerCraftEntity(em, loader, 480, 700, components.KeyLayoutArrows, 1.5)
	if err != nil {
		t.Fatalf("NewPlayerCraftEntity failed: %v", err)
	}
	if plane == nil {
		t.Fatal("expected craft")
	}

	pc, ok := ecs.GetComponent[*components.PlayerCraftComponent](em, id)
	if !ok || pc.Craft != plane {
		t.Error("PlayerCraftComponent should reference the returned craft")
	}

	control, ok := ecs.GetComponent[*components.ControlComponent](em, id)
	if !ok || control.Layout != components.KeyLayoutArrows {
		t.Errorf("ControlComponent = %+v", control)
	}

	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id)
	if !ok {
		t.Fatal("missing AnimationComponent")
	}
	if len(anim.IdleFrames) != config.HeroIdleFrameCount || len(anim.DestroyFrames) != config.HeroDestroyFrameCount {
		t.Errorf("frames = %d idle / %d destroy", len(anim.IdleFrames), len(anim.DestroyFrames))
	}
	if anim.Clip != components.ClipIdle || anim.FrameTicks != config.IdleFrameSwitchTicks {
		t.Errorf("animation should start idle, got %+v", anim)
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !ok || sprite.Image != anim.IdleFrames[0] {
		t.Error("sprite should start on the first idle frame")
	}

	timer, ok := ecs.GetComponent[*components.TimerComponent](em, id)
	if !ok || timer.TargetTime != 1.5 || timer.Name != "respawn" {
		t.Errorf("TimerComponent = %+v", timer)
	}

	// 出生点 (480-100)/2, 700-75-60
	r := plane.Rect()
	if r.Left != 190 || r.Top != 565 {
		t.Errorf("spawn = (%d,%d), want (190,565)", r.Left, r.Top)
	}
}

// TestNewPlayerCraftEntity_MissingAsset 测试素材缺失时不创建实体
func TestNewPlayerCraftEntity_MissingAsset(t *testing.T) {
	em := ecs.NewEntityManager()
	loader := NewMemoryFrameLoader(100, 75)
	loader.Missing["hero_blowup_n3.png"] = true

	_, plane, err := NewPlayerCraftEntity(em, loader, 480, 700, components.KeyLayoutBoth, 1)
	if plane != nil {
		t.Error("no craft expected on failure")
	}

	var assetErr *craft.AssetLoadError
	if !errors.As(err, &assetErr) {
		t.Fatalf("expected *craft.AssetLoadError, got %v", err)
	}
	if assetErr.Asset != "hero_blowup_n3.png" {
		t.Errorf("Asset = %q", assetErr.Asset)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("underlying cause should be preserved")
	}
	if em.EntityCount() != 0 {
		t.Errorf("entity count = %d, want 0", em.EntityCount())
	}
}

// TestNewPlayerCraftEntity_InvalidLayout 测试未知键位
func TestNewPlayerCraftEntity_InvalidLayout(t *testing.T) {
	em := ecs.NewEntityManager()
	loader := NewMemoryFrameLoader(100, 75)

	if _, _, err := NewPlayerCraftEntity(em, loader, 480, 700, "joystick", 1); err == nil {
		t.Fatal("expected error for unknown layout")
	}
	if len(loader.Loaded) != 0 {
		t.Error("no asset should be loaded when arguments are invalid")
	}
}
