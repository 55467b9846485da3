package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/planewar/pkg/components"
	"github.com/gonewx/planewar/pkg/ecs"
)

// TestInputSystem_Layouts 测试各键位方案的方向键映射
func TestInputSystem_Layouts(t *testing.T) {
	tests := []struct {
		name     string
		layout   components.KeyLayout
		keys     []ebiten.Key
		wantLeft int
		wantTop  int
	}{
		{"方向键-上", components.KeyLayoutArrows, []ebiten.Key{ebiten.KeyArrowUp}, 190, 555},
		{"方向键-左", components.KeyLayoutArrows, []ebiten.Key{ebiten.KeyArrowLeft}, 180, 565},
		{"方向键方案忽略 WASD", components.KeyLayoutArrows, []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, 190, 565},
		{"WASD-右", components.KeyLayoutWASD, []ebiten.Key{ebiten.KeyD}, 200, 565},
		{"WASD 方案忽略方向键", components.KeyLayoutWASD, []ebiten.Key{ebiten.KeyArrowUp}, 190, 565},
		{"both-同方向两个键只移动一次", components.KeyLayoutBoth, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, 190, 555},
		{"both-斜向", components.KeyLayoutBoth, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowRight}, 200, 555},
		{"上下同时按住相互抵消", components.KeyLayoutBoth, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowDown}, 190, 565},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			_, plane := newTestCraft(t, em, tt.layout, 1)
			keys := newFakeKeys()
			keys.hold(tt.keys...)

			NewInputSystem(em, keys, false).Update()

			r := plane.Rect()
			if r.Left != tt.wantLeft || r.Top != tt.wantTop {
				t.Errorf("position = (%d,%d), want (%d,%d)", r.Left, r.Top, tt.wantLeft, tt.wantTop)
			}
		})
	}
}

// TestInputSystem_ClampAtEdge 测试长按时停在边界
func TestInputSystem_ClampAtEdge(t *testing.T) {
	em := ecs.NewEntityManager()
	_, plane := newTestCraft(t, em, components.KeyLayoutBoth, 1)
	keys := newFakeKeys()
	sys := NewInputSystem(em, keys, false)

	keys.hold(ebiten.KeyArrowDown, ebiten.KeyArrowRight)
	for i := 0; i < 100; i++ {
		sys.Update()
	}
	r := plane.Rect()
	if r.Left != 380 || r.Top != 565 {
		t.Errorf("bottom-right = (%d,%d), want (380,565)", r.Left, r.Top)
	}

	keys.hold(ebiten.KeyW, ebiten.KeyA)
	for i := 0; i < 100; i++ {
		sys.Update()
	}
	r = plane.Rect()
	if r.Left != 0 || r.Top != 0 {
		t.Errorf("top-left = (%d,%d), want (0,0)", r.Left, r.Top)
	}
}

// TestInputSystem_DebugKeys 测试调试按键
func TestInputSystem_DebugKeys(t *testing.T) {
	em := ecs.NewEntityManager()
	_, plane := newTestCraft(t, em, components.KeyLayoutBoth, 1)
	keys := newFakeKeys()
	sys := NewInputSystem(em, keys, true)

	keys.tap(ebiten.KeyK)
	keys.hold(ebiten.KeyArrowUp)
	sys.Update()
	if plane.Active() {
		t.Fatal("K should destroy the craft")
	}
	if plane.Rect().Top != 565 {
		t.Error("destroyed craft must not move")
	}

	keys.tap()
	sys.Update()
	if plane.Rect().Top != 565 {
		t.Error("destroyed craft must ignore held keys")
	}

	// R 复位后同一帧即可移动
	keys.tap(ebiten.KeyR)
	sys.Update()
	if !plane.Active() {
		t.Fatal("R should reset the craft")
	}
	if plane.Rect().Top != 555 {
		t.Errorf("top = %d, want 555", plane.Rect().Top)
	}
}

// TestInputSystem_DebugKeysDisabled 测试未启用调试按键时 K 无效
func TestInputSystem_DebugKeysDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	_, plane := newTestCraft(t, em, components.KeyLayoutBoth, 1)
	keys := newFakeKeys()
	keys.tap(ebiten.KeyK)

	NewInputSystem(em, keys, false).Update()
	if !plane.Active() {
		t.Error("K must be ignored without debug keys")
	}
}

// TestInputSystem_NoControl 测试没有 ControlComponent 的飞机不受键盘控制
func TestInputSystem_NoControl(t *testing.T) {
	em := ecs.NewEntityManager()
	id, plane := newTestCraft(t, em, components.KeyLayoutBoth, 1)
	ecs.RemoveComponent[*components.ControlComponent](em, id)

	keys := newFakeKeys()
	keys.hold(ebiten.KeyArrowUp)
	NewInputSystem(em, keys, false).Update()

	if plane.Rect().Top != 565 {
		t.Error("craft without ControlComponent must not move")
	}
}
