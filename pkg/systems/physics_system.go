package systems

import (
	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/ecs"
)

// PhysicsSystem 按速度移动非运动学实体
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{entityManager: em}
}

// Update 积分一帧的位移
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[
		*components.TransformComponent,
		*components.VelocityComponent,
		*components.RigidbodyComponent,
	](ps.entityManager)

	for _, id := range ids {
		rb, _ := ecs.GetComponent[*components.RigidbodyComponent](ps.entityManager, id)
		if rb.Kinematic {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](ps.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.entityManager, id)
		tr.Local.X += vel.VX * deltaTime
		tr.Local.Y += vel.VY * deltaTime
	}
}
