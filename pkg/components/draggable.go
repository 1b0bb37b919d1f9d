package components

import "github.com/decker502/tilegrid/pkg/grid"

// DraggableComponent 可以被指针拖动的实体
type DraggableComponent struct {
	// Enabled 为 false 时忽略拖动（例如植物已经种下）
	Enabled bool
	// Dragging 当前是否正被拖动
	Dragging bool
	// Origin 开始拖动时的世界坐标，放置失败时回到这里
	Origin grid.Vec3
	// GrabOffset 实体中心相对按下点的偏移，拖动时保持不变
	GrabOffset grid.Vec3
}
