package adaptor

import (
	"context"

	"lesson-shop/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func OK(c *app.RequestContext, data any) {
	c.JSON(hertzconsts.StatusOK, data)
}

// Fail 按 Errno 的 grpc code 映射 HTTP 状态码；其余错误一律按内部错误处理，
// 不向客户端透出细节
func Fail(ctx context.Context, c *app.RequestContext, err error) {
	s, ok := status.FromError(err)
	switch {
	case ok && s.Code() == codes.InvalidArgument:
		c.JSON(hertzconsts.StatusBadRequest, utils.H{"error": s.Message()})
	case ok && s.Code() == codes.NotFound:
		c.JSON(hertzconsts.StatusNotFound, utils.H{"error": s.Message()})
	default:
		log.CtxError(ctx, "unhandled error: %v", err)
		c.JSON(hertzconsts.StatusInternalServerError, utils.H{"error": "internal server error"})
	}
}
