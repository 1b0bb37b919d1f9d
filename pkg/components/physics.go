package components

// VelocityComponent 线速度（世界单位/秒）
type VelocityComponent struct {
	VX, VY float64
}

// RigidbodyComponent 物理模拟开关
// Kinematic 为 true 时实体不再受速度驱动
type RigidbodyComponent struct {
	Kinematic bool
}
