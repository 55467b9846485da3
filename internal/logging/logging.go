// Package logging 负责全局日志的初始化
//
// 所有包通过 github.com/rs/zerolog/log 的全局 Logger 输出日志，
// 并用 For 附加 component 字段（对应旧代码里的 "[Name]" 前缀）。
package logging

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SessionID 本次进程运行的会话 ID，每条日志都会带上
var SessionID string

// Setup 安装全局 Logger
//
// 参数：
//   - verbose: true 时输出 debug 及以上级别，否则只输出 warn 及以上
//   - w: 输出目标，nil 时使用 os.Stderr
//
// 返回：
//   - zerolog.Logger: 安装后的 Logger（与 log.Logger 相同）
func Setup(verbose bool, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if SessionID == "" {
		SessionID = uuid.NewString()
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("session", SessionID).
		Logger()
	return log.Logger
}

// For 返回带 component 字段的子 Logger
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
