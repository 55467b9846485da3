package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationClip 标识当前播放的帧序列
type AnimationClip int

const (
	// ClipIdle 待机序列，循环播放
	ClipIdle AnimationClip = iota
	// ClipDestroy 爆炸序列，播放一次后停在最后一帧
	ClipDestroy
)

// String 返回序列名称（用于日志）
func (c AnimationClip) String() string {
	switch c {
	case ClipIdle:
		return "idle"
	case ClipDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// AnimationComponent 管理实体的帧动画
// 帧句柄由实体持有，组件只保存引用和播放进度（包括爆炸帧索引）
type AnimationComponent struct {
	IdleFrames    []*ebiten.Image // 待机序列帧
	DestroyFrames []*ebiten.Image // 爆炸序列帧

	Clip         AnimationClip // 当前播放的序列
	FrameTicks   int           // 每帧停留的 tick 数
	TickCounter  int           // 当前帧已停留的 tick 数
	CurrentFrame int           // 当前帧索引(0-based)
	IsFinished   bool          // 非循环序列是否已播完
}

// Play 切换到指定序列并从第一帧开始
func (a *AnimationComponent) Play(clip AnimationClip, frameTicks int) {
	a.Clip = clip
	a.FrameTicks = frameTicks
	a.TickCounter = 0
	a.CurrentFrame = 0
	a.IsFinished = false
}

// Frames 返回当前序列的所有帧
func (a *AnimationComponent) Frames() []*ebiten.Image {
	if a.Clip == ClipDestroy {
		return a.DestroyFrames
	}
	return a.IdleFrames
}

// IsLooping 当前序列是否循环
func (a *AnimationComponent) IsLooping() bool {
	return a.Clip == ClipIdle
}

// CurrentImage 返回当前帧，序列为空时返回 nil
func (a *AnimationComponent) CurrentImage() *ebiten.Image {
	frames := a.Frames()
	if len(frames) == 0 {
		return nil
	}
	idx := a.CurrentFrame
	if idx < 0 {
		idx = 0
	}
	if idx >= len(frames) {
		idx = len(frames) - 1
	}
	return frames[idx]
}
