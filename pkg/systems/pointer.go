package systems

import (
	"github.com/decker502/tilegrid/pkg/grid"
	"github.com/decker502/tilegrid/pkg/utils"
)

// Pointer 单帧指针输入（世界坐标）
type Pointer struct {
	World        grid.Vec3
	Down         bool
	JustPressed  bool
	JustReleased bool
}

// PointerFromState 把屏幕坐标的指针状态换算到世界坐标
func PointerFromState(state utils.PointerState, cam utils.Camera) Pointer {
	return Pointer{
		World:        cam.ScreenToWorld(float64(state.X), float64(state.Y)),
		Down:         state.Down,
		JustPressed:  state.JustPressed,
		JustReleased: state.JustReleased,
	}
}

// Consumed 返回去掉按下边沿的副本
// 按下已被其他系统处理（例如点中了硬币）时使用
func (p Pointer) Consumed() Pointer {
	p.JustPressed = false
	return p
}
