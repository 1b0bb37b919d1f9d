package grid

// Occupancy 单个格子的占用记录
//
// 格子实现通过内嵌或持有 Occupancy 获得统一的占用语义：
// 同一时刻最多一个占用者，已占用时拒绝覆盖。
// 零值即为空格子。
type Occupancy struct {
	occupant Plant
}

// IsOccupied 是否已被占用
func (o *Occupancy) IsOccupied() bool {
	return o.occupant != nil
}

// Occupant 返回当前占用者
func (o *Occupancy) Occupant() (Plant, bool) {
	if o.occupant == nil {
		return nil, false
	}
	return o.occupant, true
}

// TrySnap 尝试把 p 放入格子 owner
//
// 参数:
//   - p: 待放置的植物，nil 时直接返回 false
//   - owner: 拥有该记录的格子，会作为植物的父节点传给 Plant.AttachTo
//
// 返回:
//   - bool: 放置成功返回 true；格子已占用时返回 false 且不改变原占用者
func (o *Occupancy) TrySnap(p Plant, owner Tile) bool {
	if p == nil || o.occupant != nil {
		return false
	}
	p.AttachTo(owner)
	o.occupant = p
	return true
}

// Clear 清空占用者
func (o *Occupancy) Clear() {
	o.occupant = nil
}
