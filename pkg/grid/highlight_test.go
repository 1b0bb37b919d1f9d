package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// highlightedSet 返回网格中所有高亮格子的坐标
func highlightedSet(table [][]*fakeTile) map[[2]int]bool {
	set := make(map[[2]int]bool)
	for r := range table {
		for c, t := range table[r] {
			if t != nil && t.IsHighlighted() {
				set[[2]int{r, c}] = true
			}
		}
	}
	return set
}

func TestHighlight_CrossPattern(t *testing.T) {
	flat, table := rectTiles(5, 9, 1)
	g := FillTiles(flat, DefaultTolerance, nil)
	h := NewHighlightCoordinator(g, nil)

	for _, target := range [][2]int{{0, 0}, {2, 4}, {4, 8}} {
		tile, ok := g.TileAt(target[0], target[1])
		require.True(t, ok)

		h.Highlight(tile)

		got := highlightedSet(table)
		assert.Len(t, got, 9+5-1)
		for r := 0; r < 5; r++ {
			for c := 0; c < 9; c++ {
				want := r == target[0] || c == target[1]
				assert.Equal(t, want, got[[2]int{r, c}], "cell (%d,%d) after hovering %v", r, c, target)
			}
		}
	}
}

func TestHighlight_Idempotent(t *testing.T) {
	flat, table := rectTiles(3, 3, 1)
	g := FillTiles(flat, DefaultTolerance, nil)
	h := NewHighlightCoordinator(g, nil)
	center := table[1][1]

	h.Highlight(center)
	once := highlightedSet(table)
	h.Highlight(center)
	twice := highlightedSet(table)

	assert.Equal(t, once, twice)
	assert.Equal(t, []([2]int){{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}, h.Highlighted())

	center.Highlight()
	center.Highlight()
	assert.True(t, center.IsHighlighted())
	center.UnHighlight()
	center.UnHighlight()
	assert.False(t, center.IsHighlighted())
}

func TestHighlight_IgnoresNilAndStrangers(t *testing.T) {
	logger, logs := observedLogger()
	flat, table := rectTiles(2, 2, 1)
	g := FillTiles(flat, DefaultTolerance, nil)
	h := NewHighlightCoordinator(g, logger)

	h.Highlight(table[0][0])
	before := highlightedSet(table)

	h.Highlight(nil)
	assert.Equal(t, 0, warnCount(logs), "nil tile is a silent no-op")
	assert.Equal(t, before, highlightedSet(table))

	h.Highlight(newFakeTile("stranger", 0, 0))
	assert.Equal(t, 1, warnCount(logs))
	assert.Equal(t, before, highlightedSet(table), "unknown tile leaves highlights untouched")
}

func TestHighlight_PointerEvents(t *testing.T) {
	flat, table := rectTiles(3, 4, 1)
	g := FillTiles(flat, DefaultTolerance, nil)
	h := NewHighlightCoordinator(g, nil)

	h.PointerEntered(table[2][3])
	assert.Len(t, highlightedSet(table), 4+3-1)

	h.PointerExited(table[2][3])
	assert.Empty(t, highlightedSet(table))

	// 清除是幂等的
	h.ClearAll()
	assert.Empty(t, highlightedSet(table))
}

func TestHighlight_RaggedAndSparse(t *testing.T) {
	a := newFakeTile("a", 0, 0)
	b := newFakeTile("b", 1, 0)
	c := newFakeTile("c", 2, 0)
	d := newFakeTile("d", 0, -1)
	e := newFakeTile("e", 2, -2)
	g := New([][]Tile{{a, b, c}, {d}, {nil, nil, e}})
	h := NewHighlightCoordinator(g, nil)

	h.Highlight(e)

	assert.True(t, c.IsHighlighted(), "column 2 of row 0")
	assert.True(t, e.IsHighlighted())
	assert.False(t, a.IsHighlighted())
	assert.False(t, b.IsHighlighted())
	assert.False(t, d.IsHighlighted(), "short row skipped for column 2")

	h.Highlight(d)
	assert.True(t, a.IsHighlighted())
	assert.True(t, d.IsHighlighted())
	assert.False(t, c.IsHighlighted())
	assert.False(t, e.IsHighlighted())
}

func TestHighlight_Rebind(t *testing.T) {
	oldFlat, oldTable := rectTiles(2, 2, 1)
	newFlat, newTable := rectTiles(2, 2, 1)
	h := NewHighlightCoordinator(FillTiles(oldFlat, DefaultTolerance, nil), nil)

	h.Highlight(oldTable[0][0])
	require.NotEmpty(t, highlightedSet(oldTable))

	next := FillTiles(newFlat, DefaultTolerance, nil)
	h.Rebind(next)

	assert.Empty(t, highlightedSet(oldTable))
	assert.Same(t, next, h.Grid())

	h.Highlight(newTable[1][1])
	assert.Len(t, highlightedSet(newTable), 3)
}

func TestHighlight_NilGrid(t *testing.T) {
	h := NewHighlightCoordinator(nil, nil)

	assert.NotPanics(t, func() {
		h.ClearAll()
		h.Highlight(newFakeTile("a", 0, 0))
		h.PointerExited(nil)
	})
	assert.Empty(t, h.Highlighted())
}
