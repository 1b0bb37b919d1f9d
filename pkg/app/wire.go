//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package app

import (
	"github.com/google/wire"

	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/game"
	"github.com/decker502/tilegrid/pkg/logging"
	"github.com/decker502/tilegrid/pkg/scenes"
)

// InitializeApp 组装应用
func InitializeApp(cfg *config.GridConfig, opts logging.Options) (*App, func(), error) {
	wire.Build(
		logging.Provide,
		game.NewWallet,
		game.NewSceneManager,
		scenes.NewPlacementFactory,
		NewApp,
	)
	return nil, nil, nil
}
