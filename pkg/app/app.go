// Package app 提供游戏应用的核心包装器
//
// 该包把场景、钱包和日志器组装为实现 ebiten.Game 的 App，
// 组装过程由 wire 生成（见 wire.go / wire_gen.go）。
package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/game"
	"github.com/decker502/tilegrid/pkg/scenes"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	cfg                      *config.GridConfig
	logger                   *zap.Logger
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
// 场景管理器使用 factory 创建首个放置场景，按 F5 时重新创建
func NewApp(cfg *config.GridConfig, sceneManager *game.SceneManager, factory *scenes.PlacementFactory, logger *zap.Logger) *App {
	sceneManager.SetSceneFactory(factory.NewScene)
	sceneManager.Reload()

	logger.Info("app initialized",
		zap.Int("width", cfg.View.Width),
		zap.Int("height", cfg.View.Height),
		zap.Int("plants", len(cfg.Plants)))

	return &App{
		sceneManager: sceneManager,
		cfg:          cfg,
		logger:       logger,
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.View.Width, a.cfg.View.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// F5 重新开始
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.logger.Info("restarting scene")
		a.sceneManager.Reload()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.View.Width, a.cfg.View.Height
}

// Logger 返回应用日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
