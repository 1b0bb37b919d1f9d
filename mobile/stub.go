//go:build !mobile

// 普通构建下的占位文件，移动端入口见 mobile.go（-tags mobile）
package mobile

// Dummy 保持包在桌面构建中也有可导出符号
func Dummy() {}
