package components

// NameComponent 场景对象名称
type NameComponent struct {
	Name string
}
