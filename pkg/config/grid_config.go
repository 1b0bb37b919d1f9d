package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/tilegrid/pkg/grid"
)

// ErrInvalidGridConfig 配置校验失败
var ErrInvalidGridConfig = errors.New("invalid grid config")

// DefaultGridConfigPath 默认配置文件位置
const DefaultGridConfigPath = "data/grid.yaml"

// Vec2Config YAML 中的二维向量
type Vec2Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec 转换为 grid.Vec2
func (v Vec2Config) Vec() grid.Vec2 {
	return grid.Vec2{X: v.X, Y: v.Y}
}

// Point 转换为 Z=0 的 grid.Vec3
func (v Vec2Config) Point() grid.Vec3 {
	return grid.Vec3{X: v.X, Y: v.Y}
}

// ColorConfig RGBA 颜色，YAML 写法为 [r, g, b, a]
type ColorConfig [4]uint8

// RGBA 转换为 color.RGBA
func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// GridConfig 网格配置
//
// 配置文件位置: data/grid.yaml
type GridConfig struct {
	Grid      GridSection      `yaml:"grid"`
	Tile      TileSection      `yaml:"tile"`
	View      ViewSection      `yaml:"view"`
	Placement PlacementSection `yaml:"placement"`
	Economy   EconomySection   `yaml:"economy"`
	Plants    []PlantConfig    `yaml:"plants"`
}

// GridSection 网格构建参数
type GridSection struct {
	// Tolerance 扫描构建时的坐标量化步长
	Tolerance float64 `yaml:"tolerance"`
	// Rows / Columns 模板生成的行列数
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	// CellSize 手动格子尺寸（UsePrefabSize 时为测量失败的回退值）
	CellSize Vec2Config `yaml:"cellSize"`
	// UsePrefabSize 测量模板尺寸并加上 Padding
	UsePrefabSize bool       `yaml:"usePrefabSize"`
	Padding       Vec2Config `yaml:"padding"`
	// TileZ 生成格子的局部 Z
	TileZ float64 `yaml:"tileZ"`
	// Origin 网格管理器（格子父节点）的世界坐标
	Origin Vec2Config `yaml:"origin"`
}

// TileSection 格子模板外观
type TileSection struct {
	Size  Vec2Config  `yaml:"size"`
	Color ColorConfig `yaml:"color"`
}

// ViewSection 窗口与摄像机
type ViewSection struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// PixelsPerUnit 每个世界单位对应的像素数
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
}

// PlacementSection 拖放参数
type PlacementSection struct {
	// SnapDistance 放置时吸附的最大距离（世界单位），<= 0 表示不限距离
	SnapDistance float64 `yaml:"snapDistance"`
	// TrayOrigin 植物托盘第一个槽位的世界坐标
	TrayOrigin Vec2Config `yaml:"trayOrigin"`
	// TraySpacing 托盘槽位间距
	TraySpacing float64 `yaml:"traySpacing"`
}

// EconomySection 货币参数
type EconomySection struct {
	StartingCoins int `yaml:"startingCoins"`
	CoinValue     int `yaml:"coinValue"`
	// CoinTarget 硬币飞向的计数器位置
	CoinTarget         Vec2Config `yaml:"coinTarget"`
	CoinRate           float64    `yaml:"coinRate"`
	CoinArriveDistance float64    `yaml:"coinArriveDistance"`
	// CoinSpawnInterval 硬币生成间隔（秒），<= 0 表示不自动生成
	CoinSpawnInterval float64 `yaml:"coinSpawnInterval"`
}

// PlantConfig 植物目录条目
type PlantConfig struct {
	Kind   string      `yaml:"kind"`
	Health int         `yaml:"health"`
	Cost   int         `yaml:"cost"`
	Color  ColorConfig `yaml:"color"`
}

// DefaultGridConfig 返回默认配置
//
// 网格默认值：tolerance=0.01, cellSize=(1,1), rows=5, columns=9,
// usePrefabSize=true, padding=(0,0)。
func DefaultGridConfig() *GridConfig {
	return &GridConfig{
		Grid: GridSection{
			Tolerance:     grid.DefaultTolerance,
			Rows:          grid.DefaultRows,
			Columns:       grid.DefaultColumns,
			CellSize:      Vec2Config{X: 1, Y: 1},
			UsePrefabSize: true,
			TileZ:         grid.DefaultTileZ,
			Origin:        Vec2Config{X: -4.5, Y: 2.5},
		},
		Tile: TileSection{
			Size:  Vec2Config{X: 0.95, Y: 0.95},
			Color: ColorConfig{76, 175, 80, 255},
		},
		View: ViewSection{
			Width:         800,
			Height:        600,
			Title:         "Tile Grid",
			PixelsPerUnit: 40,
		},
		Placement: PlacementSection{
			SnapDistance: 0.75,
			TrayOrigin:   Vec2Config{X: -4, Y: -5},
			TraySpacing:  1.5,
		},
		Economy: EconomySection{
			StartingCoins:      100,
			CoinValue:          25,
			CoinTarget:         Vec2Config{X: -9.75, Y: 4.5},
			CoinRate:           2,
			CoinArriveDistance: 0.1,
			CoinSpawnInterval:  6,
		},
		Plants: []PlantConfig{
			{Kind: "sunflower", Health: 300, Cost: 50, Color: ColorConfig{255, 214, 0, 255}},
			{Kind: "peashooter", Health: 300, Cost: 100, Color: ColorConfig{46, 125, 50, 255}},
			{Kind: "wallnut", Health: 4000, Cost: 50, Color: ColorConfig{141, 110, 99, 255}},
		},
	}
}

// LoadGridConfig 加载网格配置
//
// 从指定路径加载 YAML 配置，文件中缺省的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/grid.yaml"）
//
// 返回:
//   - *GridConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGridConfig(path string) (*GridConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid config: %w", err)
	}
	return ParseGridConfig(data)
}

// ParseGridConfig 从 YAML 数据解析网格配置
func ParseGridConfig(data []byte) (*GridConfig, error) {
	cfg := DefaultGridConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse grid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *GridConfig) Validate() error {
	g := c.Grid
	if !(g.Tolerance > 0) || math.IsInf(g.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidGridConfig, g.Tolerance)
	}
	if g.Rows < 0 || g.Columns < 0 {
		return fmt.Errorf("%w: rows/columns must not be negative, got %dx%d", ErrInvalidGridConfig, g.Rows, g.Columns)
	}
	if !(g.CellSize.X > 0) || !(g.CellSize.Y > 0) {
		return fmt.Errorf("%w: cellSize must be positive, got (%.3f, %.3f)", ErrInvalidGridConfig, g.CellSize.X, g.CellSize.Y)
	}
	if g.Padding.X < 0 || g.Padding.Y < 0 {
		return fmt.Errorf("%w: padding must not be negative, got (%.3f, %.3f)", ErrInvalidGridConfig, g.Padding.X, g.Padding.Y)
	}
	if c.View.Width <= 0 || c.View.Height <= 0 || !(c.View.PixelsPerUnit > 0) {
		return fmt.Errorf("%w: view size and pixelsPerUnit must be positive", ErrInvalidGridConfig)
	}
	if c.Economy.StartingCoins < 0 || c.Economy.CoinValue < 0 {
		return fmt.Errorf("%w: coin amounts must not be negative", ErrInvalidGridConfig)
	}
	// 两者任一不为正时，点击后的硬币永远到不了计数器
	if !(c.Economy.CoinRate > 0) || !(c.Economy.CoinArriveDistance > 0) {
		return fmt.Errorf("%w: coinRate and coinArriveDistance must be positive, got %v and %v",
			ErrInvalidGridConfig, c.Economy.CoinRate, c.Economy.CoinArriveDistance)
	}

	seen := make(map[string]bool, len(c.Plants))
	for i, p := range c.Plants {
		if p.Kind == "" {
			return fmt.Errorf("%w: plants[%d] has no kind", ErrInvalidGridConfig, i)
		}
		if seen[p.Kind] {
			return fmt.Errorf("%w: duplicate plant kind %q", ErrInvalidGridConfig, p.Kind)
		}
		seen[p.Kind] = true
		if p.Health < 0 || p.Cost < 0 {
			return fmt.Errorf("%w: plant %q health/cost must not be negative", ErrInvalidGridConfig, p.Kind)
		}
	}
	return nil
}

// GenerateOptions 转换为模板生成参数
func (c *GridConfig) GenerateOptions() grid.GenerateOptions {
	return grid.GenerateOptions{
		Rows:          c.Grid.Rows,
		Columns:       c.Grid.Columns,
		CellSize:      c.Grid.CellSize.Vec(),
		UsePrefabSize: c.Grid.UsePrefabSize,
		Padding:       c.Grid.Padding.Vec(),
		Z:             c.Grid.TileZ,
	}
}

// MaxSnapDistance 放置时传给 NearestTile 的距离上限
func (c *GridConfig) MaxSnapDistance() float64 {
	if c.Placement.SnapDistance <= 0 {
		return math.Inf(1)
	}
	return c.Placement.SnapDistance
}
