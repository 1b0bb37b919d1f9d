package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/entities"
	"github.com/decker502/tilegrid/pkg/game"
	"github.com/decker502/tilegrid/pkg/grid"
)

// DropOutcome 一次拖放的结果
type DropOutcome int

const (
	// DropNone 本帧没有发生放下
	DropNone DropOutcome = iota
	// DropPlanted 植物种到了格子上
	DropPlanted
	// DropNoTile 附近没有格子
	DropNoTile
	// DropOccupied 最近的格子已被占用
	DropOccupied
	// DropTooExpensive 余额不足
	DropTooExpensive
)

func (o DropOutcome) String() string {
	switch o {
	case DropPlanted:
		return "planted"
	case DropNoTile:
		return "no tile in range"
	case DropOccupied:
		return "tile occupied"
	case DropTooExpensive:
		return "not enough coins"
	default:
		return "none"
	}
}

// PlantedFunc 植物种下后的回调
type PlantedFunc func(plant entities.PlantEntity, row, col int)

// DragSystem 处理植物的拖动与放置
//
// 按下时拾取指针下的可拖动植物，按住时植物跟随指针，
// 松开时在吸附距离内查找最近的格子：格子空闲且余额足够时种下并扣款，
// 否则植物回到拖动开始的位置。
type DragSystem struct {
	entityManager *ecs.EntityManager
	manager       ecs.EntityID
	wallet        *game.Wallet
	cfg           *config.GridConfig
	logger        *zap.Logger

	dragging  ecs.EntityID
	onPlanted PlantedFunc
}

// NewDragSystem 创建拖放系统
//
// 参数:
//   - em: 实体管理器
//   - manager: 网格管理器实体
//   - wallet: 种植时扣款的钱包
//   - cfg: 提供吸附距离与网格平面高度
//   - logger: 日志
func NewDragSystem(em *ecs.EntityManager, manager ecs.EntityID, wallet *game.Wallet, cfg *config.GridConfig, logger *zap.Logger) *DragSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DragSystem{
		entityManager: em,
		manager:       manager,
		wallet:        wallet,
		cfg:           cfg,
		logger:        logger,
	}
}

// SetOnPlanted 设置种植成功回调
func (s *DragSystem) SetOnPlanted(fn PlantedFunc) {
	s.onPlanted = fn
}

// Dragging 当前正在拖动的植物
func (s *DragSystem) Dragging() (ecs.EntityID, bool) {
	return s.dragging, s.dragging != ecs.InvalidEntity
}

// Update 处理本帧的指针输入
// 返回本帧放下的结果，没有放下时为 DropNone
func (s *DragSystem) Update(p Pointer) DropOutcome {
	if s.dragging != ecs.InvalidEntity && !s.entityManager.IsAlive(s.dragging) {
		s.dragging = ecs.InvalidEntity
	}

	if s.dragging == ecs.InvalidEntity {
		if p.JustPressed {
			s.grab(p.World)
		}
		return DropNone
	}

	s.follow(p.World)
	if p.JustReleased || !p.Down {
		return s.drop()
	}
	return DropNone
}

func (s *DragSystem) grab(at grid.Vec3) {
	var candidates []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.DraggableComponent, *components.PlantComponent](s.entityManager) {
		drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
		if drag.Enabled {
			candidates = append(candidates, id)
		}
	}

	id, ok := entities.Pick(s.entityManager, candidates, at)
	if !ok {
		return
	}

	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	world := entities.WorldPosition(s.entityManager, id)
	drag.Dragging = true
	drag.Origin = world
	drag.GrabOffset = world.Sub(at)
	s.dragging = id

	s.logger.Debug("plant picked up", zap.Uint64("entity", uint64(id)))
}

func (s *DragSystem) follow(at grid.Vec3) {
	drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, s.dragging)
	if !ok {
		return
	}
	target := at.Add(drag.GrabOffset)
	target.Z = drag.Origin.Z
	entities.SetWorldPosition(s.entityManager, s.dragging, target)
}

func (s *DragSystem) drop() DropOutcome {
	id := s.dragging
	s.dragging = ecs.InvalidEntity

	plant, ok := entities.PlantFromEntity(s.entityManager, id)
	if !ok {
		return DropNone
	}

	outcome, row, col := s.place(plant)
	if outcome != DropPlanted {
		s.returnToOrigin(id)
		s.logger.Info("plant returned to tray",
			zap.Uint64("entity", uint64(id)),
			zap.Stringer("reason", outcome))
		return outcome
	}

	s.logger.Info("plant placed",
		zap.Uint64("entity", uint64(id)),
		zap.Int("row", row),
		zap.Int("col", col),
		zap.Int("cost", plant.Cost()),
		zap.Int("balance", s.wallet.Balance()))

	if s.onPlanted != nil {
		s.onPlanted(plant, row, col)
	}
	return DropPlanted
}

func (s *DragSystem) place(plant entities.PlantEntity) (DropOutcome, int, int) {
	lawn, ok := entities.LawnGrid(s.entityManager, s.manager)
	if !ok {
		return DropNoTile, -1, -1
	}

	// 在网格平面上比较距离，植物自身的 Z 只影响绘制
	query := entities.WorldPosition(s.entityManager, plant.ID())
	query.Z = entities.WorldPosition(s.entityManager, s.manager).Z + s.cfg.Grid.TileZ

	tile, ok := lawn.Grid.NearestTile(query, s.cfg.MaxSnapDistance())
	if !ok {
		return DropNoTile, -1, -1
	}
	if tile.IsOccupied() {
		return DropOccupied, -1, -1
	}
	if !s.wallet.CanAfford(plant.Cost()) {
		return DropTooExpensive, -1, -1
	}
	if !tile.TrySnapPlant(plant) {
		return DropOccupied, -1, -1
	}
	s.wallet.Spend(plant.Cost())

	row, col, _ := lawn.Grid.IndicesOf(tile)
	if pc, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, plant.ID()); ok {
		pc.GridRow, pc.GridCol = row, col
	}
	return DropPlanted, row, col
}

func (s *DragSystem) returnToOrigin(id ecs.EntityID) {
	drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	if !ok {
		return
	}
	drag.Dragging = false
	entities.SetWorldPosition(s.entityManager, id, drag.Origin)
}
