package entities

import (
	"math"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

// HitSize 返回实体的命中区域尺寸
// 优先级：碰撞体 > 可点击区域 > 精灵尺寸
func HitSize(em *ecs.EntityManager, id ecs.EntityID) (grid.Vec2, bool) {
	if col, ok := ecs.GetComponent[*components.ColliderComponent](em, id); ok {
		return col.Size, true
	}
	if click, ok := ecs.GetComponent[*components.ClickableComponent](em, id); ok {
		if !click.IsEnabled {
			return grid.Vec2{}, false
		}
		return grid.Vec2{X: click.Width, Y: click.Height}, true
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		return sprite.Size, true
	}
	return grid.Vec2{}, false
}

// Contains 世界坐标 p 是否落在实体的命中区域内（以实体位置为中心）
func Contains(em *ecs.EntityManager, id ecs.EntityID, p grid.Vec3) bool {
	size, ok := HitSize(em, id)
	if !ok {
		return false
	}
	center := WorldPosition(em, id)
	return math.Abs(p.X-center.X) <= size.X/2 && math.Abs(p.Y-center.Y) <= size.Y/2
}

// Pick 在 candidates 中查找包含 p 的实体
// 多个命中时取 ID 最大的（最后创建的绘制在最上层）
func Pick(em *ecs.EntityManager, candidates []ecs.EntityID, p grid.Vec3) (ecs.EntityID, bool) {
	for i := len(candidates) - 1; i >= 0; i-- {
		if Contains(em, candidates[i], p) {
			return candidates[i], true
		}
	}
	return ecs.InvalidEntity, false
}
