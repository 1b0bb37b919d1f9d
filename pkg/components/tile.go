package components

import "github.com/decker502/tilegrid/pkg/grid"

// TileComponent 标识实体为可放置的格子
type TileComponent struct {
	// Name 格子名称，如 "Tile([0,3])"
	Name string
	// Highlighted 是否处于高亮状态
	Highlighted bool
	// Occupancy 占用记录，只能通过 TrySnapPlant/ClearOccupant 修改
	Occupancy grid.Occupancy
}
