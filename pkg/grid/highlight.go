package grid

import "go.uber.org/zap"

// HighlightCoordinator 悬停十字高亮
//
// 指针进入格子时高亮该格子所在的整行和整列，离开时清除所有高亮。
// 由输入层通过 PointerEntered/PointerExited 驱动。
type HighlightCoordinator struct {
	grid   *Grid
	logger *zap.Logger
}

// NewHighlightCoordinator 创建高亮协调器
func NewHighlightCoordinator(g *Grid, logger *zap.Logger) *HighlightCoordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HighlightCoordinator{grid: g, logger: logger}
}

// Grid 当前绑定的网格
func (h *HighlightCoordinator) Grid() *Grid {
	return h.grid
}

// Rebind 切换到重新生成的网格，旧网格上的高亮会先被清除
func (h *HighlightCoordinator) Rebind(g *Grid) {
	h.ClearAll()
	h.grid = g
}

// PointerEntered 指针进入格子
func (h *HighlightCoordinator) PointerEntered(tile Tile) {
	h.Highlight(tile)
}

// PointerExited 指针离开格子
func (h *HighlightCoordinator) PointerExited(Tile) {
	h.ClearAll()
}

// Highlight 清除旧高亮后高亮 tile 所在的行和列
// tile 为 nil 时忽略；不在网格中时记录警告并忽略
func (h *HighlightCoordinator) Highlight(tile Tile) {
	if tile == nil {
		return
	}
	row, col, ok := h.grid.IndicesOf(tile)
	if !ok {
		h.logger.Warn("highlight: tile not found in grid", zap.String("grid_id", h.grid.ID()))
		return
	}

	h.ClearAll()
	h.highlightRow(row)
	h.highlightColumn(col)
}

// ClearAll 取消所有格子的高亮，跳过空单元
func (h *HighlightCoordinator) ClearAll() {
	h.grid.ForEach(func(_, _ int, t Tile) {
		t.UnHighlight()
	})
}

// Highlighted 返回当前处于高亮状态的格子坐标（行优先）
func (h *HighlightCoordinator) Highlighted() [][2]int {
	var result [][2]int
	h.grid.ForEach(func(r, c int, t Tile) {
		if t.IsHighlighted() {
			result = append(result, [2]int{r, c})
		}
	})
	return result
}

func (h *HighlightCoordinator) highlightRow(row int) {
	for _, t := range h.grid.Row(row) {
		t.Highlight()
	}
}

func (h *HighlightCoordinator) highlightColumn(col int) {
	for _, t := range h.grid.Column(col) {
		t.Highlight()
	}
}
