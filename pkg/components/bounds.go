package components

import "github.com/decker502/tilegrid/pkg/grid"

// RectComponent UI 矩形
// Width/Height 是局部尺寸，实际尺寸需要乘以 TransformComponent 的全局缩放
type RectComponent struct {
	Width  float64
	Height float64
}

// ColliderComponent 碰撞体包围盒（世界单位）
// 同时用作指针命中检测区域
type ColliderComponent struct {
	Size grid.Vec2
}
