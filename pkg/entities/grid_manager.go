package entities

import (
	"go.uber.org/zap"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

// NewGridManager 创建网格管理器实体
// 管理器位于世界坐标 origin，是所有格子的父节点
func NewGridManager(em *ecs.EntityManager, origin grid.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Local: origin})
	ecs.AddComponent(em, id, &components.NameComponent{Name: "GridManager"})
	ecs.AddComponent(em, id, &components.LawnGridComponent{})
	return id
}

// ChildTiles 返回管理器下的所有格子
func ChildTiles(em *ecs.EntityManager, manager ecs.EntityID) []grid.Tile {
	var tiles []grid.Tile
	for _, id := range Children(em, manager) {
		if tile, ok := TileFromEntity(em, id); ok {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// DefaultTileSpec 根据配置生成格子模板原型
func DefaultTileSpec(cfg *config.GridConfig) TileSpec {
	return TileSpec{
		Sprite: &components.SpriteComponent{
			Color:     cfg.Tile.Color.RGBA(),
			Shape:     components.ShapeRect,
			Size:      cfg.Tile.Size.Vec(),
			Alpha:     float64(cfg.Tile.Color[3]) / 255,
			BaseAlpha: float64(cfg.Tile.Color[3]) / 255,
		},
	}
}

// BuildLawnGrid 构建网格并写入管理器的 LawnGridComponent
//
// 管理器下有任何子实体时扫描现有格子，否则使用模板生成。
// 已经绑定过的高亮协调器会切换到新网格。
func BuildLawnGrid(em *ecs.EntityManager, manager ecs.EntityID, tmpl grid.Template, cfg *config.GridConfig, logger *zap.Logger) *grid.Grid {
	opts := grid.BuildOptions{
		Source:    ChildTiles(em, manager),
		Children:  len(Children(em, manager)),
		Tolerance: cfg.Grid.Tolerance,
		Template:  tmpl,
		Generate:  cfg.GenerateOptions(),
	}

	g := grid.Build(opts, logger)

	lawn, ok := ecs.GetComponent[*components.LawnGridComponent](em, manager)
	if !ok {
		lawn = &components.LawnGridComponent{}
		ecs.AddComponent(em, manager, lawn)
	}
	lawn.Grid = g
	if lawn.Coordinator == nil {
		lawn.Coordinator = grid.NewHighlightCoordinator(g, logger)
	} else {
		lawn.Coordinator.Rebind(g)
	}
	return g
}

// RegenerateLawnGrid 丢弃管理器下的所有格子（以及种在上面的植物）并按模板重建
func RegenerateLawnGrid(em *ecs.EntityManager, manager ecs.EntityID, tmpl grid.Template, cfg *config.GridConfig, logger *zap.Logger) *grid.Grid {
	if lawn, ok := ecs.GetComponent[*components.LawnGridComponent](em, manager); ok && lawn.Coordinator != nil {
		lawn.Coordinator.ClearAll()
	}
	DestroyTree(em, manager)
	return BuildLawnGrid(em, manager, tmpl, cfg, logger)
}

// LawnGrid 读取管理器当前的网格与高亮协调器
func LawnGrid(em *ecs.EntityManager, manager ecs.EntityID) (*components.LawnGridComponent, bool) {
	lawn, ok := ecs.GetComponent[*components.LawnGridComponent](em, manager)
	if !ok || lawn.Grid == nil {
		return nil, false
	}
	return lawn, true
}
