package craft

import "fmt"

// AssetLoadError 表示某张飞机图片缺失或无法解码
//
// 构造失败时不会返回部分初始化的飞机；调用方应将其视为致命错误并退出进程。
type AssetLoadError struct {
	Asset string // 文件名，如 "hero_blowup_n3.png"
	Path  string // 实际尝试加载的路径
	Err   error  // 底层原因
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load asset %s (%s): %v", e.Asset, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
