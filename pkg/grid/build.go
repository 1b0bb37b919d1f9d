package grid

import "go.uber.org/zap"

// BuildOptions 网格构建来源
type BuildOptions struct {
	// Source 场景中已有的格子
	Source []Tile
	// Children 格子父节点下的子对象总数（含没有格子能力的对象）
	Children int
	// Tolerance 扫描构建时的量化步长
	Tolerance float64
	// Template 非 nil 且父节点下没有任何子对象时改为按模板生成
	Template Template
	Generate GenerateOptions
}

// Build 选择构建方式：
// 配置了模板且父节点下没有任何子对象时按模板生成，否则扫描现有格子。
// 只要存在子对象（哪怕都不是格子）就走扫描，此时可能得到空网格。
func Build(opts BuildOptions, logger *zap.Logger) *Grid {
	if opts.Template != nil && opts.Children == 0 && len(opts.Source) == 0 {
		return GenerateFromTemplate(opts.Template, opts.Generate, logger)
	}
	return FillTiles(opts.Source, opts.Tolerance, logger)
}
