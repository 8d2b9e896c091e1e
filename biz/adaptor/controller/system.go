package controller

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Alive 存活探测
func Alive(ctx context.Context, c *app.RequestContext) {
	c.String(hertzconsts.StatusOK, "lesson-shop is running")
}

func Health(ctx context.Context, c *app.RequestContext) {
	c.JSON(hertzconsts.StatusOK, utils.H{"status": "ok"})
}
