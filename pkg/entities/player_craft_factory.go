package entities

import (
	"fmt"

	"github.com/gonewx/planewar/pkg/components"
	"github.com/gonewx/planewar/pkg/config"
	"github.com/gonewx/planewar/pkg/craft"
	"github.com/gonewx/planewar/pkg/ecs"
)

// respawnTimerName 复活计时器名称
const respawnTimerName = "respawn"

// NewPlayerCraftEntity 创建我方飞机实体
//
// 参数:
//   - em: 实体管理器
//   - loader: 图片加载器（通常是 game.ResourceManager）
//   - playfieldWidth, playfieldHeight: 战场尺寸
//   - layout: 键位方案
//   - respawnDelay: 爆炸序列播完后等待复活的秒数
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - *craft.PlayerCraft: 飞机本体（同时挂在 PlayerCraftComponent 上）
//   - error: 素材加载失败时为 *craft.AssetLoadError，此时不会创建实体
func NewPlayerCraftEntity(
	em *ecs.EntityManager,
	loader craft.FrameLoader,
	playfieldWidth, playfieldHeight int,
	layout components.KeyLayout,
	respawnDelay float64,
) (ecs.EntityID, *craft.PlayerCraft, error) {
	if !layout.Valid() {
		return 0, nil, fmt.Errorf("unknown key layout %q", layout)
	}

	plane, err := craft.New(loader, playfieldWidth, playfieldHeight)
	if err != nil {
		return 0, nil, err
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PlayerCraftComponent{Craft: plane})
	em.AddComponent(entityID, &components.ControlComponent{Layout: layout})

	anim := &components.AnimationComponent{
		IdleFrames:    plane.IdleFrames(),
		DestroyFrames: plane.DestroyFrames(),
	}
	anim.Play(components.ClipIdle, config.IdleFrameSwitchTicks)
	em.AddComponent(entityID, anim)

	// 首帧在 AnimationSystem 运行前就可以绘制
	em.AddComponent(entityID, &components.SpriteComponent{Image: anim.CurrentImage()})

	em.AddComponent(entityID, &components.TimerComponent{
		Name:       respawnTimerName,
		TargetTime: respawnDelay,
	})

	return entityID, plane, nil
}
