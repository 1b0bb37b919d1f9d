package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/entities"
	"github.com/decker502/tilegrid/pkg/grid"
)

// HoverSystem 把指针的进入/离开事件转发给高亮协调器
//
// 指针移到新的格子上时先对旧格子发送离开事件，再对新格子发送进入事件，
// 效果是十字高亮跟随指针；移出所有格子时高亮全部清除。
type HoverSystem struct {
	entityManager *ecs.EntityManager
	manager       ecs.EntityID
	logger        *zap.Logger

	hovered grid.Tile
	gridID  string
}

// NewHoverSystem 创建悬停系统
//
// 参数:
//   - em: 实体管理器
//   - manager: 网格管理器实体（持有 LawnGridComponent）
//   - logger: 日志
func NewHoverSystem(em *ecs.EntityManager, manager ecs.EntityID, logger *zap.Logger) *HoverSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HoverSystem{
		entityManager: em,
		manager:       manager,
		logger:        logger,
	}
}

// Hovered 当前指针下的格子
func (s *HoverSystem) Hovered() (grid.Tile, bool) {
	return s.hovered, s.hovered != nil
}

// Update 根据指针位置更新悬停格子
func (s *HoverSystem) Update(p Pointer) {
	lawn, ok := entities.LawnGrid(s.entityManager, s.manager)
	if !ok {
		s.hovered = nil
		return
	}

	// 网格重建后旧格子已不存在，不再向协调器发送离开事件
	if id := lawn.Grid.ID(); id != s.gridID {
		s.gridID = id
		s.hovered = nil
	}

	current := s.tileAt(lawn.Grid, p.World)
	if current == s.hovered {
		return
	}

	if s.hovered != nil {
		lawn.Coordinator.PointerExited(s.hovered)
	}
	if current != nil {
		lawn.Coordinator.PointerEntered(current)
	}
	s.hovered = current
}

func (s *HoverSystem) tileAt(g *grid.Grid, p grid.Vec3) grid.Tile {
	ids := make([]ecs.EntityID, 0, g.Len())
	g.ForEach(func(_, _ int, t grid.Tile) {
		if tile, ok := t.(entities.TileEntity); ok {
			ids = append(ids, tile.ID())
		}
	})

	id, ok := entities.Pick(s.entityManager, ids, p)
	if !ok {
		return nil
	}
	tile, ok := entities.TileFromEntity(s.entityManager, id)
	if !ok {
		return nil
	}
	return tile
}
