package utils

import (
	"math"

	"github.com/decker502/tilegrid/pkg/grid"
)

// Lerp 线性插值
// t 被限制在 [0, 1]：t=0 返回 a，t>=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// LerpVec3 向量线性插值，t 同样被限制在 [0, 1]
func LerpVec3(a, b grid.Vec3, t float64) grid.Vec3 {
	return grid.Vec3{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}

// Clamp01 把 v 限制在 [0, 1]
func Clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
