package controller

import (
	"context"

	"lesson-shop/biz/adaptor"
	"lesson-shop/biz/application/dto/shop"
	"lesson-shop/biz/application/service"
	"lesson-shop/biz/infrastructure/consts"
	"lesson-shop/biz/infrastructure/util"
	"lesson-shop/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
)

type OrderController struct {
	OrderService service.IOrderService
}

func (ctl *OrderController) ListOrders(ctx context.Context, c *app.RequestContext) {
	orders, err := ctl.OrderService.ListOrders(ctx)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	adaptor.OK(c, orders)
}

func (ctl *OrderController) CreateOrder(ctx context.Context, c *app.RequestContext) {
	var req shop.CreateOrderReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.ErrInvalidOrderData)
		return
	}
	log.CtxInfo(ctx, "CreateOrder req=%s", util.JSONF(&req))
	resp, err := ctl.OrderService.CreateOrder(ctx, &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	adaptor.OK(c, resp)
}
