package components

import "github.com/decker502/tilegrid/pkg/grid"

// LawnGridComponent 标识网格管理器实体
//
// 管理器实体同时是所有格子的父节点。
// Grid 在场景加载时构建一次，重新生成时整体替换。
type LawnGridComponent struct {
	Grid        *grid.Grid
	Coordinator *grid.HighlightCoordinator
}
