package grid

import "math"

// Vec2 二维尺寸/偏移（世界单位）
type Vec2 struct {
	X, Y float64
}

// Vec3 三维坐标（世界单位）
// Z 仅用于表现层排序，网格推断只看 X/Y
type Vec3 struct {
	X, Y, Z float64
}

// Add 返回 v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub 返回 v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// SqrMagnitude 返回向量长度的平方
func (v Vec3) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance 返回两点间的欧氏距离
func (v Vec3) Distance(o Vec3) float64 {
	return math.Sqrt(v.Sub(o).SqrMagnitude())
}

// Plant 可以被放置到格子上的实体
//
// Health/Cost 均为非负整数，由放置/经济层读取。
// AttachTo 由格子在吸附成功时调用：把植物挂到格子下，
// 清零局部变换和速度，并切换为非物理模拟状态。
type Plant interface {
	Health() int
	Cost() int
	AttachTo(parent Tile)
}

// Tile 格子能力接口
//
// 高亮/取消高亮必须是幂等的；占用状态满足 IsOccupied() == (Occupant 存在)。
// 网格按接口值身份查找格子，实现应为指针或可比较的值类型；
// 不可比较的实现可以放进网格，但 IndicesOf 找不到它，也就不会被高亮。
type Tile interface {
	Highlight()
	UnHighlight()
	IsHighlighted() bool

	IsOccupied() bool
	Occupant() (Plant, bool)
	// TrySnapPlant 把植物吸附到本格，已占用或 p 为 nil 时返回 false
	TrySnapPlant(p Plant) bool
	// ClearOccupant 无条件清空占用，可重复调用
	ClearOccupant()

	// Position 世界坐标，用于最近格子查询
	Position() Vec3
	// LocalPosition 相对格子父节点的坐标，用于推断行列
	LocalPosition() Vec3
}
