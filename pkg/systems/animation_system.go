package systems

import (
	"github.com/rs/zerolog"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/components"
	"github.com/gonewx/planewar/pkg/config"
	"github.com/gonewx/planewar/pkg/ecs"
)

// AnimationSystem 根据飞机状态推进帧动画
//
//   - 存活：每 config.IdleFrameSwitchTicks 个 tick 在两张待机图之间切换
//   - 被击毁：切到爆炸序列，每 config.DestroyFrameTicks 个 tick 前进一帧，
//     播完后停在最后一帧并标记 IsFinished
//
// 结果写入 SpriteComponent.Image 供 RenderSystem 绘制。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	logger        zerolog.Logger
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
		logger:        logging.For("AnimationSystem"),
	}
}

// Update 推进一个 tick
func (s *AnimationSystem) Update() {
	ids := ecs.GetEntitiesWith3[
		*components.PlayerCraftComponent,
		*components.AnimationComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range ids {
		pc, _ := ecs.GetComponent[*components.PlayerCraftComponent](s.entityManager, id)
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if pc.Craft == nil {
			continue
		}

		switch {
		case pc.Craft.Active() && anim.Clip != components.ClipIdle:
			// 复活（或调试复位）后回到待机序列
			anim.Play(components.ClipIdle, config.IdleFrameSwitchTicks)
		case !pc.Craft.Active() && anim.Clip != components.ClipDestroy:
			anim.Play(components.ClipDestroy, config.DestroyFrameTicks)
			s.logger.Debug().Uint64("entity", uint64(id)).Msg("destroy sequence started")
		default:
			if s.advance(anim) {
				s.logger.Debug().Uint64("entity", uint64(id)).Msg("destroy sequence finished")
			}
		}

		sprite.Image = anim.CurrentImage()
	}
}

// advance 前进一个 tick，非循环序列在本次调用中播完时返回 true
func (s *AnimationSystem) advance(anim *components.AnimationComponent) bool {
	frames := anim.Frames()
	if anim.IsFinished || len(frames) == 0 {
		return false
	}

	anim.TickCounter++
	if anim.TickCounter < max(anim.FrameTicks, 1) {
		return false
	}
	anim.TickCounter = 0
	anim.CurrentFrame++

	if anim.CurrentFrame < len(frames) {
		return false
	}
	if anim.IsLooping() {
		anim.CurrentFrame = 0
		return false
	}
	// 停在最后一帧
	anim.CurrentFrame = len(frames) - 1
	anim.IsFinished = true
	return true
}
