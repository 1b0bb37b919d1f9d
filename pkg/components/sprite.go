package components

import (
	"image/color"

	"github.com/decker502/tilegrid/pkg/grid"
)

// SpriteShape 精灵的绘制形状
type SpriteShape int

const (
	// ShapeRect 矩形（格子）
	ShapeRect SpriteShape = iota
	// ShapeCircle 圆形（植物、硬币）
	ShapeCircle
)

// SpriteComponent 存储实体的视觉表现
//
// Size 为世界单位下的包围盒尺寸，模板测量时作为精灵包围盒使用。
// Alpha 为当前透明度（0-1），BaseAlpha 为创建时的原始透明度，
// 高亮时 Alpha 变为 BaseAlpha 的一半，取消高亮时恢复。
type SpriteComponent struct {
	Color     color.RGBA
	Shape     SpriteShape
	Size      grid.Vec2
	Alpha     float64
	BaseAlpha float64
	// Layer 绘制顺序，数值大的后绘制
	Layer int
}
