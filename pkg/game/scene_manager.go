package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneFactory 场景工厂函数类型
// 每次调用都返回一个全新的场景（网格重新构建）
type SceneFactory func() Scene

// SceneManager 场景管理器
// 同一时刻只有当前场景的 Update 和 Draw 会被调用。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	logger       *zap.Logger
}

// NewSceneManager 创建场景管理器
// 初始没有活动场景，需要调用 SwitchTo 或 Reload 设置。
func NewSceneManager(logger *zap.Logger) *SceneManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SceneManager{logger: logger}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换当前场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 丢弃当前场景并用工厂重新创建
func (sm *SceneManager) Reload() {
	if sm.sceneFactory == nil {
		sm.logger.Error("scene factory not set, cannot reload scene")
		return
	}
	newScene := sm.sceneFactory()
	if newScene == nil {
		sm.logger.Error("scene factory returned nil scene")
		return
	}
	sm.SwitchTo(newScene)
	sm.logger.Info("scene reloaded")
}

// Update 更新当前场景，没有活动场景时什么也不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
