package components

import (
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

// TransformComponent 实体在场景树中的位置
//
// Local 是相对父实体的坐标（世界单位）；Parent 为 0 时 Local 即世界坐标。
// 世界坐标由 entities.WorldPosition 沿父链累加得到。
type TransformComponent struct {
	Parent ecs.EntityID
	Local  grid.Vec3
	// Scale 全局缩放，零值视为 (1, 1)
	Scale grid.Vec2
}

// LossyScale 返回有效缩放
func (t *TransformComponent) LossyScale() grid.Vec2 {
	s := t.Scale
	if s.X == 0 {
		s.X = 1
	}
	if s.Y == 0 {
		s.Y = 1
	}
	return s
}
