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

// lawnWorld 一个已经生成好 5x9 网格的最小场景
type lawnWorld struct {
	em      *ecs.EntityManager
	cfg     *config.GridConfig
	manager ecs.EntityID
	tmpl    *entities.TileTemplate
	wallet  *game.Wallet
}

func newLawnWorld() *lawnWorld {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGridConfig()
	manager := entities.NewGridManager(em, cfg.Grid.Origin.Point())
	tmpl := entities.NewTileTemplate(em, manager, "Tile", entities.DefaultTileSpec(cfg))
	entities.BuildLawnGrid(em, manager, tmpl, cfg, zap.NewNop())

	return &lawnWorld{
		em:      em,
		cfg:     cfg,
		manager: manager,
		tmpl:    tmpl,
		wallet:  game.NewWallet(cfg, nil),
	}
}

func (w *lawnWorld) lawn() *components.LawnGridComponent {
	lawn, _ := entities.LawnGrid(w.em, w.manager)
	return lawn
}

func (w *lawnWorld) tile(row, col int) grid.Tile {
	t, _ := w.lawn().Grid.TileAt(row, col)
	return t
}

func (w *lawnWorld) regenerate() {
	entities.RegenerateLawnGrid(w.em, w.manager, w.tmpl, w.cfg, zap.NewNop())
}

func hoverAt(p grid.Vec3) Pointer {
	return Pointer{World: p}
}

// dragTo 模拟一次完整的按下-移动-松开
func dragTo(s *DragSystem, from, to grid.Vec3) DropOutcome {
	s.Update(Pointer{World: from, Down: true, JustPressed: true})
	s.Update(Pointer{World: to, Down: true})
	return s.Update(Pointer{World: to, JustReleased: true})
}

func offset(p grid.Vec3, dx, dy float64) grid.Vec3 {
	return grid.Vec3{X: p.X + dx, Y: p.Y + dy, Z: p.Z}
}
