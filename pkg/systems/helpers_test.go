package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/planewar/pkg/components"
	"github.com/gonewx/planewar/pkg/craft"
	"github.com/gonewx/planewar/pkg/ecs"
	"github.com/gonewx/planewar/pkg/entities"
)

// fakeKeys 可控的键盘状态
type fakeKeys struct {
	pressed map[ebiten.Key]bool
	just    map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{pressed: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) IsKeyPressed(key ebiten.Key) bool     { return f.pressed[key] }
func (f *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool { return f.just[key] }

// hold 按住若干按键（其余全部松开）
func (f *fakeKeys) hold(keys ...ebiten.Key) {
	f.pressed = map[ebiten.Key]bool{}
	for _, k := range keys {
		f.pressed[k] = true
	}
}

// tap 只在下一次 Update 中触发“刚按下”
func (f *fakeKeys) tap(keys ...ebiten.Key) {
	f.just = map[ebiten.Key]bool{}
	for _, k := range keys {
		f.just[k] = true
	}
}

// newTestCraft 在 480x700 战场上创建 100x75 的飞机实体
func newTestCraft(t *testing.T, em *ecs.EntityManager, layout components.KeyLayout, respawnDelay float64) (ecs.EntityID, *craft.PlayerCraft) {
	t.Helper()
	id, plane, err := entities.NewPlayerCraftEntity(em, entities.NewMemoryFrameLoader(100, 75), 480, 700, layout, respawnDelay)
	if err != nil {
		t.Fatalf("failed to create craft entity: %v", err)
	}
	return id, plane
}
