// Package grid 提供放置玩法的网格核心
//
// 负责从散落的格子坐标推断行列拓扑（或从模板生成矩形布局），
// 维护 (row, col) → Tile 的映射，提供坐标/格子查询、最近格子搜索，
// 以及悬停时的十字高亮。
//
// 约定：第 0 行在最上方（世界 Y 最大），第 0 列在最左侧（世界 X 最小）。
// 网格构建后不可变；重新生成网格意味着丢弃旧网格并整体重建。
// 所有操作都是同步的，只在游戏主循环中调用，不需要加锁。
package grid

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Grid 二维格子表
// cells[row][col] 为 nil 表示空单元（源格子未能对齐到推断出的行列）
type Grid struct {
	id    string
	cells [][]Tile
	cols  int
}

// New 用给定的行表创建网格
//
// rows 会被复制，允许行长度不一致（参差行），
// 列数取最长一行的长度。
func New(rows [][]Tile) *Grid {
	g := &Grid{
		id:    uuid.NewString(),
		cells: make([][]Tile, len(rows)),
	}
	for r, row := range rows {
		g.cells[r] = append([]Tile(nil), row...)
		if len(row) > g.cols {
			g.cols = len(row)
		}
	}
	return g
}

// newEmpty 创建 rows × cols 的空网格
func newEmpty(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 || rows == 0 {
		cols = 0
	}
	g := &Grid{
		id:    uuid.NewString(),
		cells: make([][]Tile, rows),
		cols:  cols,
	}
	for r := range g.cells {
		g.cells[r] = make([]Tile, cols)
	}
	return g
}

// ID 本次构建的唯一标识，写入每条诊断日志
func (g *Grid) ID() string {
	if g == nil {
		return ""
	}
	return g.id
}

// RowCount 行数
func (g *Grid) RowCount() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// ColCount 列数（参差行时取最长行）
func (g *Grid) ColCount() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// TileAt 返回 (row, col) 处的格子
// 越界或空单元返回 false
func (g *Grid) TileAt(row, col int) (Tile, bool) {
	if g == nil || row < 0 || row >= len(g.cells) {
		return nil, false
	}
	rowTiles := g.cells[row]
	if col < 0 || col >= len(rowTiles) {
		return nil, false
	}
	t := rowTiles[col]
	return t, t != nil
}

// Row 返回第 row 行的非空格子（按列升序）
func (g *Grid) Row(row int) []Tile {
	if g == nil || row < 0 || row >= len(g.cells) {
		return nil
	}
	result := make([]Tile, 0, len(g.cells[row]))
	for _, t := range g.cells[row] {
		if t != nil {
			result = append(result, t)
		}
	}
	return result
}

// Column 返回第 col 列的非空格子（按行升序），长度不足的行被跳过
func (g *Grid) Column(col int) []Tile {
	if g == nil || col < 0 {
		return nil
	}
	result := make([]Tile, 0, len(g.cells))
	for _, rowTiles := range g.cells {
		if col >= len(rowTiles) || rowTiles[col] == nil {
			continue
		}
		result = append(result, rowTiles[col])
	}
	return result
}

// ForEach 按行优先顺序遍历所有非空格子
func (g *Grid) ForEach(fn func(row, col int, t Tile)) {
	if g == nil {
		return
	}
	for r, rowTiles := range g.cells {
		for c, t := range rowTiles {
			if t == nil {
				continue
			}
			fn(r, c, t)
		}
	}
}

// Len 非空格子数量
func (g *Grid) Len() int {
	n := 0
	g.ForEach(func(int, int, Tile) { n++ })
	return n
}

// IndicesOf 查找格子所在的行列
//
// 线性扫描，按身份比较；tile 为 nil、不在网格中或其动态类型不可比较时返回 ok=false。
func (g *Grid) IndicesOf(tile Tile) (row, col int, ok bool) {
	if g == nil || tile == nil {
		return -1, -1, false
	}
	want := reflect.TypeOf(tile)
	if !want.Comparable() {
		return -1, -1, false
	}
	for r, rowTiles := range g.cells {
		for c, t := range rowTiles {
			// 动态类型不同的接口值必然不等，先比类型避免比较不可比较的值
			if t != nil && reflect.TypeOf(t) == want && t == tile {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// NearestTile 返回离 position 最近的格子
//
// 参数:
//   - position: 世界坐标
//   - maxDistance: 最大允许距离（含边界）；传入 math.Inf(1) 表示不限距离，
//     负数或 NaN 不会匹配任何格子
//
// 返回:
//   - Tile: 最近的格子；距离相同时按行优先扫描顺序取先遇到的
//   - bool: 没有满足条件的格子时为 false
func (g *Grid) NearestTile(position Vec3, maxDistance float64) (Tile, bool) {
	if g == nil || math.IsNaN(maxDistance) || maxDistance < 0 {
		return nil, false
	}

	limit := math.Inf(1)
	if !math.IsInf(maxDistance, 1) {
		limit = maxDistance * maxDistance
	}

	var best Tile
	bestSqr := math.Inf(1)
	g.ForEach(func(_, _ int, t Tile) {
		sqr := t.Position().Sub(position).SqrMagnitude()
		if sqr > limit {
			return
		}
		if best == nil || sqr < bestSqr {
			best = t
			bestSqr = sqr
		}
	})

	return best, best != nil
}

// Fingerprint 网格布局的 64 位摘要
//
// 覆盖行列数以及每个单元的 (row, col, 是否有格子, 局部坐标)，
// 相同输入两次构建得到相同的值。
func (g *Grid) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	put(uint64(g.RowCount()))
	put(uint64(g.ColCount()))
	if g == nil {
		return d.Sum64()
	}
	for r, rowTiles := range g.cells {
		for c, t := range rowTiles {
			put(uint64(r))
			put(uint64(c))
			if t == nil {
				put(0)
				continue
			}
			put(1)
			p := t.LocalPosition()
			put(math.Float64bits(p.X))
			put(math.Float64bits(p.Y))
		}
	}
	return d.Sum64()
}
