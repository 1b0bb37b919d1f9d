package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

func TestPhysicsSystem_Update(t *testing.T) {
	em := ecs.NewEntityManager()

	moving := em.CreateEntity()
	ecs.AddComponent(em, moving, &components.TransformComponent{Local: grid.Vec3{X: 1, Y: 1}})
	ecs.AddComponent(em, moving, &components.VelocityComponent{VX: 2, VY: -1})
	ecs.AddComponent(em, moving, &components.RigidbodyComponent{})

	kinematic := em.CreateEntity()
	ecs.AddComponent(em, kinematic, &components.TransformComponent{Local: grid.Vec3{X: 1, Y: 1}})
	ecs.AddComponent(em, kinematic, &components.VelocityComponent{VX: 2, VY: -1})
	ecs.AddComponent(em, kinematic, &components.RigidbodyComponent{Kinematic: true})

	NewPhysicsSystem(em).Update(0.5)

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, moving)
	assert.Equal(t, grid.Vec3{X: 2, Y: 0.5}, tr.Local)

	tr, _ = ecs.GetComponent[*components.TransformComponent](em, kinematic)
	assert.Equal(t, grid.Vec3{X: 1, Y: 1}, tr.Local)
}
