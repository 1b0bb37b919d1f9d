package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/tilegrid/pkg/app"
	"github.com/decker502/tilegrid/pkg/config"
	"github.com/decker502/tilegrid/pkg/embedded"
	"github.com/decker502/tilegrid/pkg/logging"
)

var (
	configPath = flag.String("config", config.DefaultGridConfigPath, "网格配置文件路径")
	logLevel   = flag.String("log-level", "warn", "日志级别: debug / info / warn / error")
	devLog     = flag.Bool("dev", false, "使用彩色控制台日志格式")
)

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	// 配置文件不存在时使用嵌入的默认配置，格式错误则直接退出
	cfg, err := config.LoadGridConfig(*configPath)
	missing := errors.Is(err, os.ErrNotExist)
	if missing {
		cfg, err = loadEmbeddedConfig()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game, cleanup, err := app.InitializeApp(cfg, logging.Options{
		Level:       *logLevel,
		Development: *devLog,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	defer cleanup()

	if missing {
		game.Logger().Warn("config file not found, using embedded defaults", zap.String("path", *configPath))
	}

	ebiten.SetWindowTitle(cfg.View.Title)
	ebiten.SetWindowSize(cfg.View.Width, cfg.View.Height)

	if err := ebiten.RunGame(game); err != nil {
		game.Logger().Error("game exited with error", zap.Error(err))
	}
}

func loadEmbeddedConfig() (*config.GridConfig, error) {
	data, err := embedded.ReadFile(config.DefaultGridConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGridConfig(data)
}
