package scenes

import (
	"github.com/decker502/tilegrid/pkg/game"
)

// Scene 是 game.Scene 的别名，本包中的场景都实现该接口
type Scene = game.Scene
