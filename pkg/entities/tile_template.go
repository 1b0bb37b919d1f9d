package entities

import (
	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

// TileSpec 格子模板的原型组件
// 为 nil 的组件不会添加到实例上
type TileSpec struct {
	Sprite   *components.SpriteComponent
	Rect     *components.RectComponent
	Collider *components.ColliderComponent
	Scale    grid.Vec2
	// Decoration 为 true 时实例只是装饰物，不带格子能力
	Decoration bool
}

// TileTemplate 在网格管理器下实例化格子实体，实现 grid.Template
type TileTemplate struct {
	em     *ecs.EntityManager
	parent ecs.EntityID
	name   string
	spec   TileSpec
}

var _ grid.Template = (*TileTemplate)(nil)

// NewTileTemplate 创建格子模板
//
// 参数:
//   - em: 实体管理器
//   - parent: 实例的父节点（网格管理器实体）
//   - name: 模板名称，用于日志
//   - spec: 原型组件
func NewTileTemplate(em *ecs.EntityManager, parent ecs.EntityID, name string, spec TileSpec) *TileTemplate {
	return &TileTemplate{em: em, parent: parent, name: name, spec: spec}
}

// Name 模板名称
func (t *TileTemplate) Name() string {
	return t.name
}

// Probe 在父节点原点创建一个临时实例用于测量
func (t *TileTemplate) Probe() grid.Probe {
	id := t.spawn(t.name+"(probe)", grid.Vec3{}, false)
	return &tileProbe{em: t.em, id: id}
}

// Instantiate 在局部坐标 local 处创建格子
func (t *TileTemplate) Instantiate(name string, local grid.Vec3) grid.Object {
	id := t.spawn(name, local, !t.spec.Decoration)
	if t.spec.Decoration {
		return DecorationEntity{em: t.em, id: id}
	}
	return TileEntity{em: t.em, id: id}
}

func (t *TileTemplate) spawn(name string, local grid.Vec3, withTile bool) ecs.EntityID {
	id := t.em.CreateEntity()

	ecs.AddComponent(t.em, id, &components.TransformComponent{
		Parent: t.parent,
		Local:  local,
		Scale:  t.spec.Scale,
	})
	ecs.AddComponent(t.em, id, &components.NameComponent{Name: name})

	if t.spec.Sprite != nil {
		sprite := *t.spec.Sprite
		ecs.AddComponent(t.em, id, &sprite)
	}
	if t.spec.Rect != nil {
		rect := *t.spec.Rect
		ecs.AddComponent(t.em, id, &rect)
	}
	if t.spec.Collider != nil {
		collider := *t.spec.Collider
		ecs.AddComponent(t.em, id, &collider)
	}
	if withTile {
		ecs.AddComponent(t.em, id, &components.TileComponent{Name: name})
	}
	return id
}

// tileProbe 测量探针，Release 时立即删除实体
type tileProbe struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

func (p *tileProbe) scale() grid.Vec2 {
	tr, ok := ecs.GetComponent[*components.TransformComponent](p.em, p.id)
	if !ok {
		return grid.Vec2{X: 1, Y: 1}
	}
	return tr.LossyScale()
}

func (p *tileProbe) SpriteBounds() (grid.Vec2, bool) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](p.em, p.id)
	if !ok {
		return grid.Vec2{}, false
	}
	s := p.scale()
	return grid.Vec2{X: sprite.Size.X * s.X, Y: sprite.Size.Y * s.Y}, true
}

// MeshBounds 2D 场景没有网格渲染器
func (p *tileProbe) MeshBounds() (grid.Vec2, bool) {
	return grid.Vec2{}, false
}

func (p *tileProbe) RectBounds() (grid.Vec2, grid.Vec2, bool) {
	rect, ok := ecs.GetComponent[*components.RectComponent](p.em, p.id)
	if !ok {
		return grid.Vec2{}, grid.Vec2{}, false
	}
	return grid.Vec2{X: rect.Width, Y: rect.Height}, p.scale(), true
}

func (p *tileProbe) ColliderBounds() (grid.Vec2, bool) {
	col, ok := ecs.GetComponent[*components.ColliderComponent](p.em, p.id)
	if !ok {
		return grid.Vec2{}, false
	}
	s := p.scale()
	return grid.Vec2{X: col.Size.X * s.X, Y: col.Size.Y * s.Y}, true
}

func (p *tileProbe) Release() {
	p.em.DestroyEntityImmediate(p.id)
}
