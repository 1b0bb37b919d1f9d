package entities

import (
	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

// maxParentDepth 父链最大深度，防止配置错误形成环
const maxParentDepth = 32

// WorldPosition 沿父链累加局部坐标得到世界坐标
// 没有 TransformComponent 的实体视为位于原点
func WorldPosition(em *ecs.EntityManager, id ecs.EntityID) grid.Vec3 {
	var p grid.Vec3
	for depth := 0; id != ecs.InvalidEntity && depth < maxParentDepth; depth++ {
		tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
		if !ok {
			break
		}
		p.X += tr.Local.X
		p.Y += tr.Local.Y
		p.Z += tr.Local.Z
		id = tr.Parent
	}
	return p
}

// SetWorldPosition 设置实体的世界坐标（换算为相对父节点的局部坐标）
func SetWorldPosition(em *ecs.EntityManager, id ecs.EntityID, world grid.Vec3) {
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		return
	}
	tr.Local = world.Sub(WorldPosition(em, tr.Parent))
}

// Children 返回父节点为 parent 的所有实体（按 ID 升序）
func Children(em *ecs.EntityManager, parent ecs.EntityID) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if tr.Parent == parent && id != parent {
			result = append(result, id)
		}
	}
	return result
}

// DestroyTree 立即删除 root 的所有后代（root 本身保留）
func DestroyTree(em *ecs.EntityManager, root ecs.EntityID) {
	for _, child := range Children(em, root) {
		DestroyTree(em, child)
		em.DestroyEntityImmediate(child)
	}
}
