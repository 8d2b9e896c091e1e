package adaptor

import (
	"context"
	"time"

	"lesson-shop/biz/infrastructure/config"
	"lesson-shop/biz/infrastructure/consts"
	"lesson-shop/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// AccessLog 打访问日志并注入请求id，Log.NoLogPaths 中的路径不打日志
func AccessLog(cfg *config.Config) app.HandlerFunc {
	noLog := make(map[string]struct{}, len(cfg.Log.NoLogPaths))
	for _, p := range cfg.Log.NoLogPaths {
		noLog[p] = struct{}{}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		requestID := uuid.NewString()
		c.Header(consts.HeaderRequestID, requestID)
		ctx = logx.ContextWithFields(ctx, logx.Field("requestId", requestID))

		start := time.Now()
		c.Next(ctx)

		if _, ok := noLog[string(c.Path())]; ok {
			return
		}
		log.CtxInfo(ctx, "%s %s %d %v",
			c.Method(), c.Path(), c.Response.StatusCode(), time.Since(start))
	}
}
