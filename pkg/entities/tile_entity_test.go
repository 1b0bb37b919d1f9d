package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

func newTestTile(em *ecs.EntityManager, alpha float64, withSprite bool) TileEntity {
	spec := TileSpec{}
	if withSprite {
		spec.Sprite = &components.SpriteComponent{Size: grid.Vec2{X: 1, Y: 1}, Alpha: alpha, BaseAlpha: alpha}
	}
	obj := NewTileTemplate(em, ecs.InvalidEntity, "Tile", spec).Instantiate("Tile([0,0])", grid.Vec3{X: 1, Y: 2, Z: 1})
	return obj.(TileEntity)
}

// TestTileEntity_HighlightAlpha 测试高亮透明度
func TestTileEntity_HighlightAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  float64
	}{
		{"不透明", 1, 0.5},
		{"半透明", 0.6, 0.3},
		{"完全透明", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			tile := newTestTile(em, tt.alpha, true)
			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, tile.ID())

			tile.Highlight()
			assert.True(t, tile.IsHighlighted())
			assert.InDelta(t, tt.want, sprite.Alpha, 1e-9)

			// 重复高亮不会继续减半
			tile.Highlight()
			assert.InDelta(t, tt.want, sprite.Alpha, 1e-9)

			tile.UnHighlight()
			assert.False(t, tile.IsHighlighted())
			assert.InDelta(t, tt.alpha, sprite.Alpha, 1e-9)

			tile.UnHighlight()
			assert.InDelta(t, tt.alpha, sprite.Alpha, 1e-9)
		})
	}
}

// TestTileEntity_NoSprite 测试没有精灵时高亮是空操作
func TestTileEntity_NoSprite(t *testing.T) {
	em := ecs.NewEntityManager()
	tile := newTestTile(em, 1, false)

	assert.NotPanics(t, tile.Highlight)
	assert.False(t, tile.IsHighlighted())
	assert.NotPanics(t, tile.UnHighlight)
}

// TestTileEntity_Identity 测试同一实体的包装值相等
func TestTileEntity_Identity(t *testing.T) {
	em := ecs.NewEntityManager()
	tile := newTestTile(em, 1, true)

	again, ok := TileFromEntity(em, tile.ID())
	require.True(t, ok)
	assert.True(t, grid.Tile(tile) == grid.Tile(again))

	_, ok = TileFromEntity(em, em.CreateEntity())
	assert.False(t, ok)

	var zero TileEntity
	assert.False(t, zero.IsOccupied())
	assert.Equal(t, grid.Vec3{}, zero.Position())
	assert.False(t, zero.TrySnapPlant(nil))
}

// TestTileEntity_SnapPlant 测试吸附植物
func TestTileEntity_SnapPlant(t *testing.T) {
	em := ecs.NewEntityManager()
	parent := NewGridManager(em, grid.Vec3{X: 10, Y: 20})
	tile := NewTileTemplate(em, parent, "Tile", TileSpec{}).Instantiate("Tile([0,0])", grid.Vec3{X: 1, Y: 2, Z: 1}).(TileEntity)

	plant := NewPlantEntity(em, testPlantConfig("sunflower", 50), grid.Vec3{X: -3, Y: -4})
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, plant.ID())
	vel.VX, vel.VY = 3, 4
	drag, _ := ecs.GetComponent[*components.DraggableComponent](em, plant.ID())
	drag.Dragging = true

	require.True(t, tile.TrySnapPlant(plant))

	assert.True(t, tile.IsOccupied())
	occupant, ok := tile.Occupant()
	require.True(t, ok)
	assert.Equal(t, grid.Plant(plant), occupant)

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, plant.ID())
	assert.Equal(t, tile.ID(), tr.Parent)
	assert.Equal(t, grid.Vec3{}, tr.Local)
	assert.Equal(t, grid.Vec3{X: 11, Y: 22, Z: 1}, WorldPosition(em, plant.ID()))

	assert.Zero(t, vel.VX)
	assert.Zero(t, vel.VY)
	rb, _ := ecs.GetComponent[*components.RigidbodyComponent](em, plant.ID())
	assert.True(t, rb.Kinematic)
	assert.False(t, drag.Dragging)
	assert.False(t, drag.Enabled)

	pc, _ := ecs.GetComponent[*components.PlantComponent](em, plant.ID())
	assert.Equal(t, tile.ID(), pc.Tile)
	assert.True(t, pc.Planted())

	// 已占用的格子拒绝第二株植物，第二株保持原状
	other := NewPlantEntity(em, testPlantConfig("peashooter", 100), grid.Vec3{X: 5})
	assert.False(t, tile.TrySnapPlant(other))
	assert.Equal(t, grid.Vec3{X: 5}, WorldPosition(em, other.ID()))

	tile.ClearOccupant()
	assert.False(t, tile.IsOccupied())
	assert.True(t, tile.TrySnapPlant(other))
}

// TestPlantEntity_AttachToForeignTile 测试挂到其他实体管理器的格子
func TestPlantEntity_AttachToForeignTile(t *testing.T) {
	em := ecs.NewEntityManager()
	otherEM := ecs.NewEntityManager()
	foreign := newTestTile(otherEM, 1, true)
	plant := NewPlantEntity(em, testPlantConfig("wallnut", 50), grid.Vec3{})

	plant.AttachTo(foreign)

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, plant.ID())
	assert.Equal(t, ecs.InvalidEntity, tr.Parent)
	assert.Equal(t, foreign.Position(), tr.Local)
	pc, _ := ecs.GetComponent[*components.PlantComponent](em, plant.ID())
	assert.False(t, pc.Planted())
}

// TestNewPlantEntity 测试植物属性
func TestNewPlantEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	plant := NewPlantEntity(em, testPlantConfig("peashooter", 100), grid.Vec3{X: 1})

	assert.Equal(t, 300, plant.Health())
	assert.Equal(t, 100, plant.Cost())

	pc, _ := ecs.GetComponent[*components.PlantComponent](em, plant.ID())
	assert.Equal(t, -1, pc.GridRow)
	assert.Equal(t, -1, pc.GridCol)

	drag, _ := ecs.GetComponent[*components.DraggableComponent](em, plant.ID())
	assert.True(t, drag.Enabled)
	assert.Equal(t, grid.Vec3{X: 1}, drag.Origin)

	_, ok := PlantFromEntity(em, plant.ID())
	assert.True(t, ok)
	_, ok = PlantFromEntity(em, em.CreateEntity())
	assert.False(t, ok)

}

// TestPlantEntity_ZeroValue 测试零值植物（PlantFromEntity 失败时的返回值）
func TestPlantEntity_ZeroValue(t *testing.T) {
	em := ecs.NewEntityManager()
	tile := TileEntity{em: em, id: em.CreateEntity()}

	zero, ok := PlantFromEntity(em, em.CreateEntity())
	require.False(t, ok)

	assert.NotPanics(t, func() {
		assert.Zero(t, zero.Health())
		assert.Zero(t, zero.Cost())
		zero.AttachTo(tile)
		zero.AttachTo(nil)
	})

	var bare PlantEntity
	var deco DecorationEntity
	assert.NotPanics(t, func() {
		assert.Zero(t, bare.Health())
		bare.AttachTo(tile)
		assert.Empty(t, deco.Name())
	})
}
