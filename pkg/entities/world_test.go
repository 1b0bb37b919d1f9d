package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

func testPlantConfig(kind string, cost int) config.PlantConfig {
	return config.PlantConfig{Kind: kind, Health: 300, Cost: cost, Color: config.ColorConfig{0, 200, 0, 255}}
}

func spawnAt(em *ecs.EntityManager, parent ecs.EntityID, local grid.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Parent: parent, Local: local})
	return id
}

// TestWorldPosition 测试父链累加
func TestWorldPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	root := spawnAt(em, ecs.InvalidEntity, grid.Vec3{X: 1, Y: 1})
	child := spawnAt(em, root, grid.Vec3{X: 2, Y: -1, Z: 1})
	leaf := spawnAt(em, child, grid.Vec3{X: 0.5})

	assert.Equal(t, grid.Vec3{X: 3.5, Y: 0, Z: 1}, WorldPosition(em, leaf))
	assert.Equal(t, grid.Vec3{}, WorldPosition(em, em.CreateEntity()))

	SetWorldPosition(em, leaf, grid.Vec3{X: 10, Y: 10, Z: 1})
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, leaf)
	assert.Equal(t, grid.Vec3{X: 7, Y: 10, Z: 0}, tr.Local)
	assert.Equal(t, grid.Vec3{X: 10, Y: 10, Z: 1}, WorldPosition(em, leaf))
}

// TestWorldPosition_Cycle 测试父链成环时不会死循环
func TestWorldPosition_Cycle(t *testing.T) {
	em := ecs.NewEntityManager()
	a := spawnAt(em, ecs.InvalidEntity, grid.Vec3{X: 1})
	b := spawnAt(em, a, grid.Vec3{X: 1})
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, a)
	tr.Parent = b

	assert.Equal(t, float64(maxParentDepth), WorldPosition(em, a).X)
}

// TestChildrenAndDestroyTree 测试子节点查询与递归删除
func TestChildrenAndDestroyTree(t *testing.T) {
	em := ecs.NewEntityManager()
	root := spawnAt(em, ecs.InvalidEntity, grid.Vec3{})
	c1 := spawnAt(em, root, grid.Vec3{})
	c2 := spawnAt(em, root, grid.Vec3{})
	grandchild := spawnAt(em, c1, grid.Vec3{})
	unrelated := spawnAt(em, ecs.InvalidEntity, grid.Vec3{})

	assert.Equal(t, []ecs.EntityID{c1, c2}, Children(em, root))

	DestroyTree(em, root)

	assert.True(t, em.IsAlive(root))
	assert.True(t, em.IsAlive(unrelated))
	assert.False(t, em.IsAlive(c1))
	assert.False(t, em.IsAlive(c2))
	assert.False(t, em.IsAlive(grandchild))
}

// TestPick 测试命中检测
func TestPick(t *testing.T) {
	em := ecs.NewEntityManager()

	below := spawnAt(em, ecs.InvalidEntity, grid.Vec3{})
	ecs.AddComponent(em, below, &components.SpriteComponent{Size: grid.Vec2{X: 2, Y: 2}})
	above := spawnAt(em, ecs.InvalidEntity, grid.Vec3{X: 0.5})
	ecs.AddComponent(em, above, &components.ColliderComponent{Size: grid.Vec2{X: 1, Y: 1}})
	disabled := spawnAt(em, ecs.InvalidEntity, grid.Vec3{})
	ecs.AddComponent(em, disabled, &components.ClickableComponent{Width: 5, Height: 5, IsEnabled: false})

	candidates := []ecs.EntityID{below, above, disabled}

	tests := []struct {
		name   string
		point  grid.Vec3
		want   ecs.EntityID
		wantOK bool
	}{
		{"重叠时取最后创建的", grid.Vec3{X: 0.5}, above, true},
		{"只命中下层", grid.Vec3{X: -0.9, Y: 0.9}, below, true},
		{"边界包含", grid.Vec3{X: 1, Y: 0.5}, above, true},
		{"未命中", grid.Vec3{X: 3}, ecs.InvalidEntity, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pick(em, candidates, tt.point)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
