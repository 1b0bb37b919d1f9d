package entities

import (
	"math"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

// highlightAlphaFactor 高亮时透明度相对原始值的比例
const highlightAlphaFactor = 0.5

// TileEntity 基于 ECS 实体的格子，实现 grid.Tile
//
// TileEntity 是值类型：同一个实体的两个 TileEntity 值相等，
// 因此可以直接作为 grid 中的格子身份比较。
type TileEntity struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

var _ grid.Tile = TileEntity{}

// TileFromEntity 把拥有 TileComponent 的实体包装为格子
func TileFromEntity(em *ecs.EntityManager, id ecs.EntityID) (TileEntity, bool) {
	if !ecs.HasComponent[*components.TileComponent](em, id) {
		return TileEntity{}, false
	}
	return TileEntity{em: em, id: id}, true
}

// ID 实体 ID
func (t TileEntity) ID() ecs.EntityID {
	return t.id
}

func (t TileEntity) state() (*components.TileComponent, bool) {
	if t.em == nil {
		return nil, false
	}
	return ecs.GetComponent[*components.TileComponent](t.em, t.id)
}

// Name 格子名称
func (t TileEntity) Name() string {
	tc, ok := t.state()
	if !ok {
		return ""
	}
	return tc.Name
}

// Highlight 把精灵透明度降为原始值的一半
// 没有精灵或已高亮时不做任何事
func (t TileEntity) Highlight() {
	tc, ok := t.state()
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](t.em, t.id)
	if !ok || tc.Highlighted {
		return
	}
	tc.Highlighted = true
	sprite.Alpha = clamp01(sprite.BaseAlpha * highlightAlphaFactor)
}

// UnHighlight 恢复原始透明度
func (t TileEntity) UnHighlight() {
	tc, ok := t.state()
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](t.em, t.id)
	if !ok || !tc.Highlighted {
		return
	}
	tc.Highlighted = false
	sprite.Alpha = sprite.BaseAlpha
}

// IsHighlighted 是否处于高亮状态
func (t TileEntity) IsHighlighted() bool {
	tc, ok := t.state()
	return ok && tc.Highlighted
}

// IsOccupied 是否已种有植物
func (t TileEntity) IsOccupied() bool {
	tc, ok := t.state()
	return ok && tc.Occupancy.IsOccupied()
}

// Occupant 当前占用的植物
func (t TileEntity) Occupant() (grid.Plant, bool) {
	tc, ok := t.state()
	if !ok {
		return nil, false
	}
	return tc.Occupancy.Occupant()
}

// TrySnapPlant 把植物吸附到本格
// 植物会成为格子的子节点，局部坐标和速度清零并切换为运动学模式
func (t TileEntity) TrySnapPlant(p grid.Plant) bool {
	tc, ok := t.state()
	if !ok {
		return false
	}
	return tc.Occupancy.TrySnap(p, t)
}

// ClearOccupant 清空占用
func (t TileEntity) ClearOccupant() {
	if tc, ok := t.state(); ok {
		tc.Occupancy.Clear()
	}
}

// Position 世界坐标
func (t TileEntity) Position() grid.Vec3 {
	if t.em == nil {
		return grid.Vec3{}
	}
	return WorldPosition(t.em, t.id)
}

// LocalPosition 相对网格管理器的坐标
func (t TileEntity) LocalPosition() grid.Vec3 {
	if t.em == nil {
		return grid.Vec3{}
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](t.em, t.id)
	if !ok {
		return grid.Vec3{}
	}
	return tr.Local
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// DecorationEntity 没有格子能力的场景对象
type DecorationEntity struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

// ID 实体 ID
func (d DecorationEntity) ID() ecs.EntityID {
	return d.id
}

// Name 对象名称
func (d DecorationEntity) Name() string {
	if d.em == nil {
		return ""
	}
	n, ok := ecs.GetComponent[*components.NameComponent](d.em, d.id)
	if !ok {
		return ""
	}
	return n.Name
}
