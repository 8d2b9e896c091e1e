package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// 包装 logx，跳过一层调用栈以定位真正的调用方

func Info(format string, v ...any) {
	logx.WithCallerSkip(1).Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.WithCallerSkip(1).Errorf(format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).WithCallerSkip(1).Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).WithCallerSkip(1).Errorf(format, v...)
}
