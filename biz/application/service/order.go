package service

import (
	"context"

	"lesson-shop/biz/application/dto/shop"
	"lesson-shop/biz/infrastructure/consts"
	"lesson-shop/biz/infrastructure/repository/order"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStore 由 order.MongoMapper 实现，测试时可替换
type OrderStore interface {
	Insert(ctx context.Context, order *order.Order) error
	FindAll(ctx context.Context) ([]*order.Order, error)
}

type IOrderService interface {
	ListOrders(ctx context.Context) ([]*order.Order, error)
	CreateOrder(ctx context.Context, req *shop.CreateOrderReq) (*shop.CreateOrderResp, error)
}

type OrderService struct {
	OrderStore OrderStore
}

var OrderServiceSet = wire.NewSet(
	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),
)

func (s *OrderService) ListOrders(ctx context.Context) ([]*order.Order, error) {
	orders, err := s.OrderStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*order.Order{}
	}
	return orders, nil
}

// CreateOrder 校验三项必填后落库，不检查课程是否存在（允许悬挂引用）
func (s *OrderService) CreateOrder(ctx context.Context, req *shop.CreateOrderReq) (*shop.CreateOrderResp, error) {
	if req.Name == "" || req.Phone == "" || len(req.LessonIDs) == 0 {
		return nil, consts.ErrInvalidOrderData
	}
	lessonIDs := make([]primitive.ObjectID, 0, len(req.LessonIDs))
	for _, id := range req.LessonIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, consts.ErrInvalidOrderData
		}
		lessonIDs = append(lessonIDs, oid)
	}

	o := &order.Order{
		Name:      req.Name,
		Phone:     req.Phone,
		LessonIDs: lessonIDs,
	}
	if err := s.OrderStore.Insert(ctx, o); err != nil {
		return nil, err
	}
	return &shop.CreateOrderResp{InsertedID: o.ID.Hex()}, nil
}
