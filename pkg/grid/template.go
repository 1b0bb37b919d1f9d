package grid

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// 生成参数默认值
const (
	DefaultRows    = 5
	DefaultColumns = 9
	DefaultTileZ   = 1.0

	// minCellExtent 测量结果的下限，避免零尺寸导致格子重叠
	minCellExtent = 0.0001
)

// Object 模板实例化得到的场景对象
// 只有同时实现 Tile 的对象才会被放入网格
type Object interface {
	Name() string
}

// Probe 用于测量模板尺寸的临时实例
//
// 各 Bounds 方法按优先级依次尝试，第一个返回 ok 的结果生效。
// 测量结束后必须调用 Release，场景中不能留下任何探针对象。
type Probe interface {
	SpriteBounds() (Vec2, bool)
	MeshBounds() (Vec2, bool)
	// RectBounds 返回 UI 矩形的局部尺寸以及全局缩放
	RectBounds() (rect Vec2, lossyScale Vec2, ok bool)
	ColliderBounds() (Vec2, bool)
	Release()
}

// Template 格子模板（预制体）
type Template interface {
	Name() string
	// Probe 创建测量探针，没有可测量对象时可以返回 nil
	Probe() Probe
	// Instantiate 在局部坐标 local 处创建一个名为 name 的实例
	Instantiate(name string, local Vec3) Object
}

// GenerateOptions 模板生成参数
type GenerateOptions struct {
	Rows    int
	Columns int
	// CellSize 手动格子尺寸；UsePrefabSize 时作为测量失败的回退值
	CellSize Vec2
	// UsePrefabSize 为 true 时测量模板尺寸并加上 Padding
	UsePrefabSize bool
	Padding       Vec2
	// Z 所有格子共用的局部 Z
	Z float64
}

// DefaultGenerateOptions 返回默认生成参数（5 行 × 9 列，1×1 格子，测量模板尺寸）
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Rows:          DefaultRows,
		Columns:       DefaultColumns,
		CellSize:      Vec2{X: 1, Y: 1},
		UsePrefabSize: true,
		Z:             DefaultTileZ,
	}
}

// TileName 生成格子的名称
func TileName(row, col int) string {
	return fmt.Sprintf("Tile([%d,%d])", row, col)
}

// MeasureCellSize 计算实际格子尺寸
//
// UsePrefabSize 为 false 时直接返回 CellSize。
// 否则依次尝试精灵、网格、UI 矩形（乘以全局缩放）、碰撞体的包围盒，
// 都不可用时回退到 CellSize 并记录警告。每个维度先钳制到 minCellExtent 以上再加 Padding。
func MeasureCellSize(tmpl Template, opts GenerateOptions, logger *zap.Logger) Vec2 {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !opts.UsePrefabSize {
		return opts.CellSize
	}

	measured, ok := measure(tmpl)
	if !ok {
		name := ""
		if tmpl != nil {
			name = tmpl.Name()
		}
		logger.Warn("template has no measurable bounds, using configured cell size",
			zap.String("template", name),
			zap.Float64("cell_w", opts.CellSize.X),
			zap.Float64("cell_h", opts.CellSize.Y))
		measured = opts.CellSize
	}

	return Vec2{
		X: math.Max(minCellExtent, measured.X) + opts.Padding.X,
		Y: math.Max(minCellExtent, measured.Y) + opts.Padding.Y,
	}
}

func measure(tmpl Template) (Vec2, bool) {
	if tmpl == nil {
		return Vec2{}, false
	}
	probe := tmpl.Probe()
	if probe == nil {
		return Vec2{}, false
	}
	defer probe.Release()

	if size, ok := probe.SpriteBounds(); ok {
		return size, true
	}
	if size, ok := probe.MeshBounds(); ok {
		return size, true
	}
	if rect, scale, ok := probe.RectBounds(); ok {
		return Vec2{X: rect.X * scale.X, Y: rect.Y * scale.Y}, true
	}
	if size, ok := probe.ColliderBounds(); ok {
		return size, true
	}
	return Vec2{}, false
}

// GenerateFromTemplate 用模板实例化 Rows × Columns 个格子
//
// 格子位于局部坐标 (col*cellW, -row*cellH, Z)：左上角为原点，行向下增长、列向右增长。
// 实例未实现 Tile 时记录警告并保留空单元。
// tmpl 为 nil 时记录警告并返回空网格。
func GenerateFromTemplate(tmpl Template, opts GenerateOptions, logger *zap.Logger) *Grid {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tmpl == nil {
		g := newEmpty(0, 0)
		logger.Warn("tile template is nil, cannot generate grid", zap.String("grid_id", g.ID()))
		return g
	}

	cellSize := MeasureCellSize(tmpl, opts, logger)

	g := newEmpty(opts.Rows, opts.Columns)
	log := logger.With(zap.String("grid_id", g.ID()))

	for r := 0; r < g.RowCount(); r++ {
		for c := 0; c < g.ColCount(); c++ {
			local := Vec3{
				X: float64(c) * cellSize.X,
				Y: -float64(r) * cellSize.Y,
				Z: opts.Z,
			}
			obj := tmpl.Instantiate(TileName(r, c), local)
			tile, ok := obj.(Tile)
			if !ok {
				log.Warn("instantiated template has no tile capability",
					zap.Int("row", r),
					zap.Int("col", c))
				continue
			}
			g.cells[r][c] = tile
		}
	}

	log.Info("generated grid from template",
		zap.String("template", tmpl.Name()),
		zap.Int("rows", g.RowCount()),
		zap.Int("cols", g.ColCount()),
		zap.Float64("cell_w", cellSize.X),
		zap.Float64("cell_h", cellSize.Y))
	return g
}
