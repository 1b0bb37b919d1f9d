package grid

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// DefaultTolerance 坐标量化步长
const DefaultTolerance = 0.01

// Snap 把 v 量化到 tolerance 的最近整数倍，用于吸收浮点噪声
func Snap(v, tolerance float64) float64 {
	return math.Round(v/tolerance) * tolerance
}

// FillTiles 从已有格子的局部坐标推断行列并建立网格
//
// 参数:
//   - tiles: 场景中已存在的格子（nil 元素会被忽略）
//   - tolerance: 量化步长，<= 0 时使用 DefaultTolerance
//   - logger: 诊断输出，可为 nil
//
// 返回:
//   - *Grid: 构建结果；没有任何格子时返回 0×0 网格并记录一条警告
//
// 列按量化后的 X 升序排列，行按量化后的 Y 降序排列（最上面一行为第 0 行）。
// 未能映射到行列的格子只记录警告，不会中断构建。
func FillTiles(tiles []Tile, tolerance float64, logger *zap.Logger) *Grid {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tolerance <= 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		logger.Warn("invalid tolerance, using default",
			zap.Float64("tolerance", tolerance),
			zap.Float64("default", DefaultTolerance))
		tolerance = DefaultTolerance
	}

	found := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t != nil {
			found = append(found, t)
		}
	}

	if len(found) == 0 {
		g := newEmpty(0, 0)
		logger.Warn("no tiles found to fill grid", zap.String("grid_id", g.ID()))
		return g
	}

	xs := make([]float64, 0, len(found))
	ys := make([]float64, 0, len(found))
	for _, t := range found {
		p := t.LocalPosition()
		xs = append(xs, Snap(p.X, tolerance))
		ys = append(ys, Snap(p.Y, tolerance))
	}

	colOf := axisIndex(xs, false)
	rowOf := axisIndex(ys, true)

	g := newEmpty(len(rowOf), len(colOf))
	log := logger.With(zap.String("grid_id", g.ID()))

	for _, t := range found {
		p := t.LocalPosition()
		sx := Snap(p.X, tolerance)
		sy := Snap(p.Y, tolerance)

		col, okCol := colOf[sx]
		row, okRow := rowOf[sy]
		if !okCol || !okRow {
			pos := t.Position()
			log.Warn("tile could not be mapped to grid indices",
				zap.Float64("x", pos.X),
				zap.Float64("y", pos.Y),
				zap.Float64("sx", sx),
				zap.Float64("sy", sy))
			continue
		}
		if g.cells[row][col] != nil {
			log.Warn("tile overlaps an already filled cell",
				zap.Int("row", row),
				zap.Int("col", col))
			continue
		}
		g.cells[row][col] = t
	}

	log.Info("filled tiles grid",
		zap.Int("rows", g.RowCount()),
		zap.Int("cols", g.ColCount()))
	return g
}

// axisIndex 对量化后的坐标去重排序，返回 值 → 索引 的映射
// NaN 不参与排序，对应的格子会因查不到索引而被跳过
func axisIndex(values []float64, descending bool) map[float64]int {
	distinct := make([]float64, 0, len(values))
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}

	if descending {
		sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))
	} else {
		sort.Float64s(distinct)
	}

	index := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		index[v] = i
	}
	return index
}
