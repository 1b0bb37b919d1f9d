package utils

import (
	"github.com/decker502/tilegrid/pkg/grid"
)

// Camera 世界坐标与屏幕坐标的换算
//
// 世界坐标以单位为长度、Y 轴向上，原点位于屏幕中心；
// 屏幕坐标以像素为长度、Y 轴向下，原点位于窗口左上角。
//
//	screenX = ScreenWidth/2  + (worldX - Center.X) * PixelsPerUnit
//	screenY = ScreenHeight/2 - (worldY - Center.Y) * PixelsPerUnit
type Camera struct {
	// Center 屏幕中心对应的世界坐标
	Center        grid.Vec2
	PixelsPerUnit float64
	ScreenWidth   int
	ScreenHeight  int
}

// NewCamera 创建以世界原点为中心的摄像机
func NewCamera(screenWidth, screenHeight int, pixelsPerUnit float64) Camera {
	return Camera{
		PixelsPerUnit: pixelsPerUnit,
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
	}
}

// WorldToScreen 世界坐标 → 屏幕坐标（Z 被忽略）
func (c Camera) WorldToScreen(p grid.Vec3) (screenX, screenY float64) {
	screenX = float64(c.ScreenWidth)/2 + (p.X-c.Center.X)*c.PixelsPerUnit
	screenY = float64(c.ScreenHeight)/2 - (p.Y-c.Center.Y)*c.PixelsPerUnit
	return screenX, screenY
}

// ScreenToWorld 屏幕坐标 → 世界坐标（Z=0）
func (c Camera) ScreenToWorld(screenX, screenY float64) grid.Vec3 {
	if c.PixelsPerUnit == 0 {
		return grid.Vec3{X: c.Center.X, Y: c.Center.Y}
	}
	return grid.Vec3{
		X: c.Center.X + (screenX-float64(c.ScreenWidth)/2)/c.PixelsPerUnit,
		Y: c.Center.Y - (screenY-float64(c.ScreenHeight)/2)/c.PixelsPerUnit,
	}
}

// ToPixels 世界长度 → 像素长度
func (c Camera) ToPixels(units float64) float64 {
	return units * c.PixelsPerUnit
}
