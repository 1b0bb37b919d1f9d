package systems

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/entities"
	"github.com/decker502/tilegrid/pkg/game"
	"github.com/decker502/tilegrid/pkg/grid"
	"github.com/decker502/tilegrid/pkg/utils"
)

// SpawnArea 硬币落点范围（世界坐标）
// 硬币从 Max.Y 上方一个单位处出现，落到 [Min.Y, Max.Y] 内的随机高度
type SpawnArea struct {
	Min, Max grid.Vec2
}

// CoinSystem 管理硬币的生成、点击与收集
//
// 被点击的硬币每帧以 dt*Rate 的比例向计数器插值移动，
// 距离小于到达距离时计入钱包并销毁。一枚硬币只会入账一次。
type CoinSystem struct {
	entityManager *ecs.EntityManager
	wallet        *game.Wallet
	economy       config.EconomySection
	logger        *zap.Logger

	area       SpawnArea
	rng        *rand.Rand
	spawnTimer float64
}

// NewCoinSystem 创建硬币系统
// 默认不自动生成硬币，调用 EnableSpawning 后才开始计时
func NewCoinSystem(em *ecs.EntityManager, wallet *game.Wallet, economy config.EconomySection, logger *zap.Logger) *CoinSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoinSystem{
		entityManager: em,
		wallet:        wallet,
		economy:       economy,
		logger:        logger,
	}
}

// EnableSpawning 按 CoinSpawnInterval 在 area 内自动生成硬币
func (s *CoinSystem) EnableSpawning(area SpawnArea, rng *rand.Rand) {
	s.area = area
	s.rng = rng
}

// HandleClick 点击硬币时开始收集
// 返回 true 表示按下已被消耗
func (s *CoinSystem) HandleClick(p Pointer) bool {
	if !p.JustPressed {
		return false
	}

	candidates := ecs.GetEntitiesWith2[*components.CoinComponent, *components.ClickableComponent](s.entityManager)
	id, ok := entities.Pick(s.entityManager, candidates, p.World)
	if !ok {
		return false
	}
	s.Collect(id)
	return true
}

// Collect 让硬币开始飞向计数器
func (s *CoinSystem) Collect(id ecs.EntityID) {
	coin, ok := ecs.GetComponent[*components.CoinComponent](s.entityManager, id)
	if !ok || coin.Moving || coin.Collected {
		return
	}
	coin.Moving = true
	coin.Falling = false

	if click, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		click.IsEnabled = false
	}
	if rb, ok := ecs.GetComponent[*components.RigidbodyComponent](s.entityManager, id); ok {
		rb.Kinematic = true
	}
}

// Update 更新硬币
func (s *CoinSystem) Update(deltaTime float64) {
	s.updateSpawn(deltaTime)

	for _, id := range ecs.GetEntitiesWith2[*components.CoinComponent, *components.TransformComponent](s.entityManager) {
		coin, _ := ecs.GetComponent[*components.CoinComponent](s.entityManager, id)
		switch {
		case coin.Collected:
		case coin.Moving:
			s.move(id, coin, deltaTime)
		case coin.Falling:
			s.land(id, coin)
		}
	}
}

func (s *CoinSystem) move(id ecs.EntityID, coin *components.CoinComponent, deltaTime float64) {
	pos := entities.WorldPosition(s.entityManager, id)
	pos = utils.LerpVec3(pos, coin.Target, deltaTime*coin.Rate)
	entities.SetWorldPosition(s.entityManager, id, pos)

	if pos.Distance(coin.Target) >= coin.ArriveDistance {
		return
	}
	coin.Collected = true
	s.wallet.Add(coin.Value)
	s.entityManager.DestroyEntity(id)
	s.logger.Debug("coin collected", zap.Int("value", coin.Value), zap.Int("balance", s.wallet.Balance()))
}

func (s *CoinSystem) land(id ecs.EntityID, coin *components.CoinComponent) {
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok || tr.Local.Y > coin.LandY {
		return
	}
	tr.Local.Y = coin.LandY
	coin.Falling = false
	if rb, ok := ecs.GetComponent[*components.RigidbodyComponent](s.entityManager, id); ok {
		rb.Kinematic = true
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.VX, vel.VY = 0, 0
	}
}

func (s *CoinSystem) updateSpawn(deltaTime float64) {
	interval := s.economy.CoinSpawnInterval
	if s.rng == nil || interval <= 0 {
		return
	}
	s.spawnTimer += deltaTime
	for s.spawnTimer >= interval {
		s.spawnTimer -= interval
		s.spawn()
	}
}

func (s *CoinSystem) spawn() {
	x := utils.Lerp(s.area.Min.X, s.area.Max.X, s.rng.Float64())
	landY := utils.Lerp(s.area.Min.Y, s.area.Max.Y, s.rng.Float64())
	pos := grid.Vec3{X: x, Y: s.area.Max.Y + 1}

	id := entities.NewFallingCoinEntity(s.entityManager, pos, landY, s.economy)
	s.logger.Debug("coin spawned", zap.Uint64("entity", uint64(id)), zap.Float64("x", x), zap.Float64("landY", landY))
}
