package systems

import (
	"github.com/rs/zerolog"

	"github.com/gonewx/planewar/internal/logging"
	"github.com/gonewx/planewar/pkg/components"
	"github.com/gonewx/planewar/pkg/config"
	"github.com/gonewx/planewar/pkg/ecs"
)

// RespawnSystem 爆炸序列播完后等待一段时间，再让飞机回到出生点
//
// 依赖 TimerComponent 计时（TargetTime 即复活延迟）。
// 飞机存活时计时器保持清零。
type RespawnSystem struct {
	entityManager *ecs.EntityManager
	logger        zerolog.Logger
}

// NewRespawnSystem 创建复活系统
func NewRespawnSystem(em *ecs.EntityManager) *RespawnSystem {
	return &RespawnSystem{
		entityManager: em,
		logger:        logging.For("RespawnSystem"),
	}
}

// Update 累加计时并在到期时复活飞机
func (s *RespawnSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[
		*components.PlayerCraftComponent,
		*components.AnimationComponent,
		*components.TimerComponent,
	](s.entityManager)

	for _, id := range ids {
		pc, _ := ecs.GetComponent[*components.PlayerCraftComponent](s.entityManager, id)
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if pc.Craft == nil {
			continue
		}

		if pc.Craft.Active() {
			if timer.CurrentTime != 0 || timer.IsReady {
				timer.Reset()
			}
			continue
		}

		// 爆炸动画还没播完
		if anim.Clip != components.ClipDestroy || !anim.IsFinished {
			continue
		}

		timer.Tick(deltaTime)
		if !timer.IsReady {
			continue
		}

		pc.Craft.Reset()
		// 爆炸帧索引在组件里，复位飞机不会清掉它
		anim.Play(components.ClipIdle, config.IdleFrameSwitchTicks)
		timer.Reset()

		left, top := pc.Craft.SpawnPosition()
		s.logger.Info().Uint64("entity", uint64(id)).Int("left", left).Int("top", top).Msg("craft respawned")
	}
}
