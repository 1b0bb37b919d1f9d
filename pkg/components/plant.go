package components

import "github.com/decker502/tilegrid/pkg/ecs"

// PlantComponent 标识实体为植物
//
// 植物在托盘中等待拖放，吸附到格子后 Tile 指向所在格子实体。
type PlantComponent struct {
	// Kind 植物种类（来自配置的植物目录）
	Kind string
	// Health 生命值（>= 0）
	Health int
	// Cost 种植花费（>= 0）
	Cost int
	// Tile 所在格子实体，0 表示尚未种下
	Tile ecs.EntityID
	// GridRow / GridCol 种下时所在的行列
	GridRow int
	GridCol int
}

// Planted 是否已种到格子上
func (p *PlantComponent) Planted() bool {
	return p.Tile != ecs.InvalidEntity
}
