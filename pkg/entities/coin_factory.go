package entities

import (
	"image/color"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

// coinSize 硬币尺寸（世界单位）
const coinSize = 0.5

// coinColor 硬币颜色
var coinColor = color.RGBA{R: 247, G: 147, B: 26, A: 255}

// NewCoinEntity 创建一个硬币实体
// 参数:
//   - em: EntityManager 实例
//   - pos: 世界坐标
//   - economy: 硬币面值、飞行目标与速度
//
// 返回: 创建的实体ID
func NewCoinEntity(em *ecs.EntityManager, pos grid.Vec3, economy config.EconomySection) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.TransformComponent{Local: pos})

	ecs.AddComponent(em, id, &components.SpriteComponent{
		Color:     coinColor,
		Shape:     components.ShapeCircle,
		Size:      grid.Vec2{X: coinSize, Y: coinSize},
		Alpha:     1,
		BaseAlpha: 1,
		Layer:     2,
	})

	ecs.AddComponent(em, id, &components.ClickableComponent{
		Width:     coinSize,
		Height:    coinSize,
		IsEnabled: true,
	})

	ecs.AddComponent(em, id, &components.CoinComponent{
		Value:          economy.CoinValue,
		Target:         economy.CoinTarget.Point(),
		Rate:           economy.CoinRate,
		ArriveDistance: economy.CoinArriveDistance,
	})

	return id
}

// coinFallSpeed 自动生成的硬币下落速度（世界单位/秒）
const coinFallSpeed = 1.5

// NewFallingCoinEntity 创建一个从 pos 下落到 landY 的硬币
// pos 已在 landY 以下时硬币直接静止
func NewFallingCoinEntity(em *ecs.EntityManager, pos grid.Vec3, landY float64, economy config.EconomySection) ecs.EntityID {
	id := NewCoinEntity(em, pos, economy)
	falling := pos.Y > landY

	vel := &components.VelocityComponent{}
	if falling {
		vel.VY = -coinFallSpeed
	}
	ecs.AddComponent(em, id, vel)
	ecs.AddComponent(em, id, &components.RigidbodyComponent{Kinematic: !falling})

	if coin, ok := ecs.GetComponent[*components.CoinComponent](em, id); ok {
		coin.Falling = falling
		coin.LandY = landY
	}
	return id
}
