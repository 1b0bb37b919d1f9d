package components

import "github.com/decker502/tilegrid/pkg/grid"

// CoinComponent 可收集的货币
//
// 被点击后 Moving 置为 true，每帧向 Target 插值移动，
// 距离小于 ArriveDistance 时销毁并把 Value 计入钱包。
type CoinComponent struct {
	Value          int
	Moving         bool
	Target         grid.Vec3
	Rate           float64 // 插值速率，每帧系数为 dt*Rate
	ArriveDistance float64
	// Collected 已经入账，等待帧末销毁
	Collected bool
	// Falling 为 true 时硬币在物理系统驱动下下落，到达 LandY 后停住
	Falling bool
	LandY   float64
}
