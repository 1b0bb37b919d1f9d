package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/entities"
	"github.com/decker502/tilegrid/pkg/utils"
)

// RenderSystem 绘制所有带精灵的实体
//
// 绘制顺序（从底到顶）：Layer 升序 → 实体 ID 升序，
// 正在拖动的实体总是最后绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        utils.Camera
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera utils.Camera) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
	}
}

// Camera 渲染使用的摄像机
func (s *RenderSystem) Camera() utils.Camera {
	return s.camera
}

// Draw 绘制所有精灵
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		s.drawEntity(screen, id)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if sprite.Alpha <= 0 {
		return
	}

	cx, cy := s.camera.WorldToScreen(entities.WorldPosition(s.entityManager, id))
	w := s.camera.ToPixels(sprite.Size.X)
	h := s.camera.ToPixels(sprite.Size.Y)
	clr := fade(sprite.Color, sprite.Alpha)

	switch sprite.Shape {
	case components.ShapeCircle:
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(w/2), clr, true)
	default:
		vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), clr, true)
	}
}

// drawOrder 返回排好序的待绘制实体
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.SpriteComponent](s.entityManager)

	layer := func(id ecs.EntityID) int {
		if drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id); ok && drag.Dragging {
			return math.MaxInt
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		return sprite.Layer
	}

	sort.SliceStable(ids, func(i, j int) bool {
		return layer(ids[i]) < layer(ids[j])
	})
	return ids
}

// fade 把不透明颜色 c 转换为透明度为 alpha 的预乘颜色
// 精灵的透明度由 Alpha 字段决定，c.A 不参与计算
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
