package components

import "github.com/gonewx/planewar/pkg/craft"

// PlayerCraftComponent 把 craft.PlayerCraft 挂到实体上
// 位置、存活状态和遮罩都直接从 Craft 读取，不再复制一份
type PlayerCraftComponent struct {
	Craft *craft.PlayerCraft
}
