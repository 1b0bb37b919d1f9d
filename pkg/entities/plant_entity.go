package entities

import (
	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

// plantSize 植物的绘制/命中尺寸（世界单位）
const plantSize = 0.7

// PlantEntity 基于 ECS 实体的植物，实现 grid.Plant
type PlantEntity struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

var _ grid.Plant = PlantEntity{}

// PlantFromEntity 把拥有 PlantComponent 的实体包装为植物
func PlantFromEntity(em *ecs.EntityManager, id ecs.EntityID) (PlantEntity, bool) {
	if !ecs.HasComponent[*components.PlantComponent](em, id) {
		return PlantEntity{}, false
	}
	return PlantEntity{em: em, id: id}, true
}

// ID 实体 ID
func (p PlantEntity) ID() ecs.EntityID {
	return p.id
}

func (p PlantEntity) state() (*components.PlantComponent, bool) {
	if p.em == nil {
		return nil, false
	}
	return ecs.GetComponent[*components.PlantComponent](p.em, p.id)
}

// Health 生命值
func (p PlantEntity) Health() int {
	pc, ok := p.state()
	if !ok {
		return 0
	}
	return pc.Health
}

// Cost 种植花费
func (p PlantEntity) Cost() int {
	pc, ok := p.state()
	if !ok {
		return 0
	}
	return pc.Cost
}

// AttachTo 挂到格子下
//
// 父节点是 TileEntity 时成为其子实体并把局部坐标清零；
// 其他格子实现只能把世界坐标对齐到格子位置。
// 两种情况下都会清零速度、切换为运动学模式并停止拖动。
// 零值植物或 parent 为 nil 时不做任何事。
func (p PlantEntity) AttachTo(parent grid.Tile) {
	if p.em == nil || parent == nil {
		return
	}
	tile, isEntity := parent.(TileEntity)
	isEntity = isEntity && tile.em == p.em

	if tr, ok := ecs.GetComponent[*components.TransformComponent](p.em, p.id); ok {
		if isEntity {
			tr.Parent = tile.ID()
			tr.Local = grid.Vec3{}
		} else {
			tr.Parent = ecs.InvalidEntity
			tr.Local = parent.Position()
		}
	}
	if pc, ok := p.state(); ok && isEntity {
		pc.Tile = tile.ID()
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](p.em, p.id); ok {
		vel.VX, vel.VY = 0, 0
	}
	if rb, ok := ecs.GetComponent[*components.RigidbodyComponent](p.em, p.id); ok {
		rb.Kinematic = true
	}
	if drag, ok := ecs.GetComponent[*components.DraggableComponent](p.em, p.id); ok {
		drag.Dragging = false
		drag.Enabled = false
	}
}

// NewPlantEntity 创建一个待种植的植物实体
//
// 参数:
//   - em: 实体管理器
//   - plant: 植物目录条目（种类、生命值、花费、颜色）
//   - pos: 初始世界坐标（托盘槽位）
//
// 返回:
//   - PlantEntity: 新建的植物
func NewPlantEntity(em *ecs.EntityManager, plant config.PlantConfig, pos grid.Vec3) PlantEntity {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.TransformComponent{Local: pos})
	ecs.AddComponent(em, id, &components.NameComponent{Name: plant.Kind})

	ecs.AddComponent(em, id, &components.SpriteComponent{
		Color:     plant.Color.RGBA(),
		Shape:     components.ShapeCircle,
		Size:      grid.Vec2{X: plantSize, Y: plantSize},
		Alpha:     1,
		BaseAlpha: 1,
		Layer:     1,
	})

	ecs.AddComponent(em, id, &components.PlantComponent{
		Kind:    plant.Kind,
		Health:  max(plant.Health, 0),
		Cost:    max(plant.Cost, 0),
		GridRow: -1,
		GridCol: -1,
	})

	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.RigidbodyComponent{})
	ecs.AddComponent(em, id, &components.ColliderComponent{Size: grid.Vec2{X: plantSize, Y: plantSize}})
	ecs.AddComponent(em, id, &components.DraggableComponent{Enabled: true, Origin: pos})

	return PlantEntity{em: em, id: id}
}
