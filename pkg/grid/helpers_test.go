package grid

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeTile 测试用格子，世界坐标与局部坐标相同
type fakeTile struct {
	Occupancy
	name        string
	pos         Vec3
	highlighted bool
	highlights  int // 实际发生的 false→true 切换次数
}

func newFakeTile(name string, x, y float64) *fakeTile {
	return &fakeTile{name: name, pos: Vec3{X: x, Y: y}}
}

func (t *fakeTile) Name() string { return t.name }

func (t *fakeTile) Highlight() {
	if t.highlighted {
		return
	}
	t.highlighted = true
	t.highlights++
}

func (t *fakeTile) UnHighlight()              { t.highlighted = false }
func (t *fakeTile) IsHighlighted() bool       { return t.highlighted }
func (t *fakeTile) Position() Vec3            { return t.pos }
func (t *fakeTile) LocalPosition() Vec3       { return t.pos }
func (t *fakeTile) TrySnapPlant(p Plant) bool { return t.TrySnap(p, t) }
func (t *fakeTile) ClearOccupant()            { t.Clear() }

// fakePlant 测试用植物
type fakePlant struct {
	health, cost int
	parent       Tile
	attached     int
}

func (p *fakePlant) Health() int { return p.health }
func (p *fakePlant) Cost() int   { return p.cost }
func (p *fakePlant) AttachTo(parent Tile) {
	p.parent = parent
	p.attached++
}

// observedLogger 返回记录 Info 及以上级别日志的 logger
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

// warnCount 统计警告条数
func warnCount(logs *observer.ObservedLogs) int {
	return logs.FilterLevelExact(zapcore.WarnLevel).Len()
}

// rectTiles 生成 rows × cols 的格子，间距为 step，第 0 行在最上方
func rectTiles(rows, cols int, step float64) ([]Tile, [][]*fakeTile) {
	flat := make([]Tile, 0, rows*cols)
	table := make([][]*fakeTile, rows)
	for r := 0; r < rows; r++ {
		table[r] = make([]*fakeTile, cols)
		for c := 0; c < cols; c++ {
			t := newFakeTile(TileName(r, c), float64(c)*step, -float64(r)*step)
			table[r][c] = t
			flat = append(flat, t)
		}
	}
	return flat, table
}
