// Package utils 提供输入、坐标换算等与 ebiten 打交道的工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerState 单帧的指针状态（屏幕坐标）
// 鼠标左键与触摸统一处理
type PointerState struct {
	X, Y int
	// Down 本帧是否按住
	Down bool
	// JustPressed 本帧刚按下
	JustPressed bool
	// JustReleased 本帧刚释放（X/Y 为释放前最后的位置）
	JustReleased bool
}

// PointerTracker 跟踪指针的按下与释放边沿
type PointerTracker struct {
	down  bool
	touch bool
	x, y  int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Step 根据本帧的原始输入计算边沿
//
// 参数:
//   - down: 本帧是否按住
//   - x, y: 本帧的指针位置
//
// 返回:
//   - PointerState: 带有 JustPressed/JustReleased 的状态
func (p *PointerTracker) Step(down bool, x, y int) PointerState {
	state := PointerState{
		X:            x,
		Y:            y,
		Down:         down,
		JustPressed:  down && !p.down,
		JustReleased: !down && p.down,
	}
	p.down = down
	p.x, p.y = x, y
	return state
}

// Poll 读取 ebiten 的当前输入并调用 Step
// 优先检测触摸；触摸释放时使用最后一次触摸位置
func (p *PointerTracker) Poll() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		p.touch = true
		x, y := ebiten.TouchPosition(touchIDs[0])
		return p.Step(true, x, y)
	}
	if p.touch {
		p.touch = false
		return p.Step(false, p.x, p.y)
	}

	x, y := ebiten.CursorPosition()
	return p.Step(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y)
}
