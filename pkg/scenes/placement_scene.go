package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/tilegrid/pkg/components"
	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/entities"
	"github.com/decker502/tilegrid/pkg/game"
	"github.com/decker502/tilegrid/pkg/grid"
	"github.com/decker502/tilegrid/pkg/systems"
	"github.com/decker502/tilegrid/pkg/utils"
)

var (
	backgroundColor = color.RGBA{R: 34, G: 40, B: 49, A: 255}
	hudColor        = color.RGBA{R: 255, G: 236, B: 179, A: 255}
)

// PlacementScene 格子放置场景
//
// 场景内容：
//   - 网格管理器及其下的格子（模板生成或扫描已有格子）
//   - 植物托盘：每种植物一个槽位，种下后槽位自动补充
//   - 定时掉落的硬币，点击后飞向计数器
//
// 按 R 键丢弃所有格子（连同种在上面的植物）并重新生成。
type PlacementScene struct {
	entityManager *ecs.EntityManager
	cfg           *config.GridConfig
	wallet        *game.Wallet
	logger        *zap.Logger

	manager  ecs.EntityID
	template *entities.TileTemplate
	camera   utils.Camera
	pointer  *utils.PointerTracker

	hoverSystem   *systems.HoverSystem
	dragSystem    *systems.DragSystem
	coinSystem    *systems.CoinSystem
	physicsSystem *systems.PhysicsSystem
	renderSystem  *systems.RenderSystem

	plants    map[string]config.PlantConfig
	traySlots map[string]grid.Vec3

	hudFace text.Face
}

// NewPlacementScene 创建放置场景
//
// 参数:
//   - cfg: 网格与玩法配置
//   - wallet: 钱包，由工厂在每次创建场景前重置
//   - logger: 日志
//   - rng: 硬币落点的随机源，为 nil 时不自动生成硬币
func NewPlacementScene(cfg *config.GridConfig, wallet *game.Wallet, logger *zap.Logger, rng *rand.Rand) *PlacementScene {
	if logger == nil {
		logger = zap.NewNop()
	}
	em := ecs.NewEntityManager()
	camera := utils.NewCamera(cfg.View.Width, cfg.View.Height, cfg.View.PixelsPerUnit)

	s := &PlacementScene{
		entityManager: em,
		cfg:           cfg,
		wallet:        wallet,
		logger:        logger.Named("placement"),
		camera:        camera,
		pointer:       utils.NewPointerTracker(),
		plants:        make(map[string]config.PlantConfig, len(cfg.Plants)),
		traySlots:     make(map[string]grid.Vec3, len(cfg.Plants)),
		hudFace:       text.NewGoXFace(basicfont.Face7x13),
	}

	s.manager = entities.NewGridManager(em, cfg.Grid.Origin.Point())
	s.template = entities.NewTileTemplate(em, s.manager, "Tile", entities.DefaultTileSpec(cfg))
	g := entities.BuildLawnGrid(em, s.manager, s.template, cfg, s.logger)

	s.hoverSystem = systems.NewHoverSystem(em, s.manager, s.logger)
	s.dragSystem = systems.NewDragSystem(em, s.manager, wallet, cfg, s.logger)
	s.dragSystem.SetOnPlanted(s.onPlanted)
	s.coinSystem = systems.NewCoinSystem(em, wallet, cfg.Economy, s.logger)
	s.physicsSystem = systems.NewPhysicsSystem(em)
	s.renderSystem = systems.NewRenderSystem(em, camera)

	if rng != nil {
		s.coinSystem.EnableSpawning(spawnAreaOf(g, cfg), rng)
	}

	s.fillTray()
	return s
}

// EntityManager 场景的实体管理器
func (s *PlacementScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// GridManager 网格管理器实体
func (s *PlacementScene) GridManager() ecs.EntityID {
	return s.manager
}

// Grid 当前网格
func (s *PlacementScene) Grid() *grid.Grid {
	lawn, ok := entities.LawnGrid(s.entityManager, s.manager)
	if !ok {
		return nil
	}
	return lawn.Grid
}

// Wallet 场景使用的钱包
func (s *PlacementScene) Wallet() *game.Wallet {
	return s.wallet
}

// Update 读取输入并推进一帧
func (s *PlacementScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Regenerate()
	}
	p := systems.PointerFromState(s.pointer.Poll(), s.camera)
	s.Step(p, deltaTime)
}

// Step 用给定的指针输入推进一帧
func (s *PlacementScene) Step(p systems.Pointer, deltaTime float64) {
	if s.coinSystem.HandleClick(p) {
		p = p.Consumed()
	}
	s.hoverSystem.Update(p)
	s.dragSystem.Update(p)
	s.physicsSystem.Update(deltaTime)
	s.coinSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Regenerate 丢弃所有格子并按模板重新生成
func (s *PlacementScene) Regenerate() {
	entities.RegenerateLawnGrid(s.entityManager, s.manager, s.template, s.cfg, s.logger)
}

// Draw 绘制场景
func (s *PlacementScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)
}

func (s *PlacementScene) drawHUD(screen *ebiten.Image) {
	x, y := s.camera.WorldToScreen(s.cfg.Economy.CoinTarget.Point())

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, fmt.Sprintf("Coins: %d", s.wallet.Balance()), s.hudFace, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(8, float64(s.cfg.View.Height)-20)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, "Drag plants onto the lawn.  R: regenerate grid", s.hudFace, op)
}

// fillTray 为每种植物放一株到托盘
func (s *PlacementScene) fillTray() {
	origin := s.cfg.Placement.TrayOrigin.Point()
	for i, p := range s.cfg.Plants {
		slot := grid.Vec3{X: origin.X + float64(i)*s.cfg.Placement.TraySpacing, Y: origin.Y}
		s.plants[p.Kind] = p
		s.traySlots[p.Kind] = slot
		entities.NewPlantEntity(s.entityManager, p, slot)
	}
}

// onPlanted 补充被种下植物的托盘槽位
func (s *PlacementScene) onPlanted(plant entities.PlantEntity, row, col int) {
	pc, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, plant.ID())
	if !ok {
		return
	}
	slot, ok := s.traySlots[pc.Kind]
	if !ok {
		return
	}
	entities.NewPlantEntity(s.entityManager, s.plants[pc.Kind], slot)
	s.logger.Debug("tray refilled", zap.String("kind", pc.Kind), zap.Int("row", row), zap.Int("col", col))
}

// spawnAreaOf 以网格覆盖的范围作为硬币落点范围
func spawnAreaOf(g *grid.Grid, cfg *config.GridConfig) systems.SpawnArea {
	origin := cfg.Grid.Origin.Vec()
	area := systems.SpawnArea{Min: origin, Max: origin}

	first, ok := g.TileAt(0, 0)
	if !ok {
		return area
	}
	last, ok := g.TileAt(g.RowCount()-1, g.ColCount()-1)
	if !ok {
		return area
	}
	a, b := first.Position(), last.Position()
	area.Min = grid.Vec2{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	area.Max = grid.Vec2{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return area
}

// PlacementFactory 创建放置场景，供场景管理器重新加载使用
type PlacementFactory struct {
	cfg    *config.GridConfig
	wallet *game.Wallet
	logger *zap.Logger
	seed   int64
}

// NewPlacementFactory 创建场景工厂
func NewPlacementFactory(cfg *config.GridConfig, wallet *game.Wallet, logger *zap.Logger) *PlacementFactory {
	return &PlacementFactory{cfg: cfg, wallet: wallet, logger: logger, seed: time.Now().UnixNano()}
}

// NewScene 创建一个全新的放置场景
// 钱包恢复为初始金币：旧场景中花掉和收集的金币都随场景一起丢弃
func (f *PlacementFactory) NewScene() game.Scene {
	f.wallet.Reset()
	f.seed++
	return NewPlacementScene(f.cfg, f.wallet, f.logger, rand.New(rand.NewSource(f.seed)))
}
