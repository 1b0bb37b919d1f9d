package embedded

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFS(t *testing.T, data fs.FS) {
	t.Helper()
	prev := dataFS
	Init(data)
	t.Cleanup(func() { dataFS = prev })
}

// TestReadFileNotInitialized 测试未初始化时读取
func TestReadFileNotInitialized(t *testing.T) {
	withFS(t, nil)

	assert.False(t, IsInitialized())
	_, err := ReadFile("data/grid.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

// TestReadFile 测试路径标准化与前缀校验
func TestReadFile(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/grid.yaml": {Data: []byte("grid:\n  rows: 3\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/grid.yaml", false},
		{"带 ./ 前缀", "./data/grid.yaml", false},
		{"未知前缀", "assets/grid.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, string(data), "rows: 3")
		})
	}

	assert.True(t, Exists("data/grid.yaml"))
	assert.False(t, Exists("data/other.yaml"))
}
