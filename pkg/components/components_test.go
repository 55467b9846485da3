package components

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestAnimationComponent_Play 测试切换序列会重置进度
func TestAnimationComponent_Play(t *testing.T) {
	idle := []*ebiten.Image{ebiten.NewImage(4, 4), ebiten.NewImage(4, 4)}
	destroy := []*ebiten.Image{
		ebiten.NewImage(4, 4), ebiten.NewImage(4, 4),
		ebiten.NewImage(4, 4), ebiten.NewImage(4, 4),
	}
	a := &AnimationComponent{IdleFrames: idle, DestroyFrames: destroy}
	a.Play(ClipIdle, 5)
	a.CurrentFrame = 1
	a.TickCounter = 3

	if a.CurrentImage() != idle[1] {
		t.Error("CurrentImage should follow the idle clip")
	}
	if !a.IsLooping() {
		t.Error("idle clip should loop")
	}

	a.Play(ClipDestroy, 6)
	if a.CurrentFrame != 0 || a.TickCounter != 0 || a.IsFinished {
		t.Errorf("Play should reset progress, got %+v", a)
	}
	if a.CurrentImage() != destroy[0] {
		t.Error("CurrentImage should follow the destroy clip")
	}
	if a.IsLooping() {
		t.Error("destroy clip should not loop")
	}

	// 越界索引被夹到最后一帧
	a.CurrentFrame = 10
	if a.CurrentImage() != destroy[3] {
		t.Error("out of range index should clamp to last frame")
	}
}

// TestAnimationComponent_Empty 测试空序列
func TestAnimationComponent_Empty(t *testing.T) {
	a := &AnimationComponent{}
	if a.CurrentImage() != nil {
		t.Error("empty clip should have no image")
	}
}

// TestTimerComponent 测试计时器
func TestTimerComponent(t *testing.T) {
	timer := &TimerComponent{Name: "respawn", TargetTime: 1.0}
	timer.Tick(0.4)
	timer.Tick(0.4)
	if timer.IsReady {
		t.Fatal("timer should not be ready at 0.8s")
	}
	timer.Tick(0.4)
	if !timer.IsReady {
		t.Fatal("timer should be ready at 1.2s")
	}

	// 完成后不再累加
	current := timer.CurrentTime
	timer.Tick(5)
	if timer.CurrentTime != current {
		t.Error("ready timer should not keep counting")
	}

	timer.Reset()
	if timer.IsReady || timer.CurrentTime != 0 {
		t.Errorf("Reset failed: %+v", timer)
	}
}

// TestKeyLayout_Valid 测试键位方案校验
func TestKeyLayout_Valid(t *testing.T) {
	for _, l := range []KeyLayout{KeyLayoutArrows, KeyLayoutWASD, KeyLayoutBoth} {
		if !l.Valid() {
			t.Errorf("%q should be valid", l)
		}
	}
	if KeyLayout("joystick").Valid() {
		t.Error("unknown layout should be invalid")
	}
}

// TestAnimationClip_String 测试序列名称
func TestAnimationClip_String(t *testing.T) {
	if ClipIdle.String() != "idle" || ClipDestroy.String() != "destroy" || AnimationClip(9).String() != "unknown" {
		t.Error("unexpected clip names")
	}
}
