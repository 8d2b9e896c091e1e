package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lesson-shop/biz/application/dto/shop"
	"lesson-shop/biz/infrastructure/consts"
	"lesson-shop/biz/infrastructure/repository/order"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeOrderStore 与 MongoMapper 一样在插入时补 ID 和 CreatedAt
type fakeOrderStore struct {
	inserted  []*order.Order
	insertErr error
	orders    []*order.Order
}

func (f *fakeOrderStore) Insert(_ context.Context, o *order.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
		o.CreatedAt = time.Now()
	}
	f.inserted = append(f.inserted, o)
	return nil
}

func (f *fakeOrderStore) FindAll(_ context.Context) ([]*order.Order, error) {
	return f.orders, nil
}

func TestCreateOrderValidation(t *testing.T) {
	validID := primitive.NewObjectID().Hex()

	tests := []struct {
		name string
		req  *shop.CreateOrderReq
	}{
		{"missing name", &shop.CreateOrderReq{Phone: "123", LessonIDs: []string{validID}}},
		{"missing phone", &shop.CreateOrderReq{Name: "Alice", LessonIDs: []string{validID}}},
		{"nil lessonIDs", &shop.CreateOrderReq{Name: "Alice", Phone: "123"}},
		{"empty lessonIDs", &shop.CreateOrderReq{Name: "Alice", Phone: "123", LessonIDs: []string{}}},
		{"bad lesson id", &shop.CreateOrderReq{Name: "Alice", Phone: "123", LessonIDs: []string{"not-a-hex"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeOrderStore{}
			svc := &OrderService{OrderStore: store}
			if _, err := svc.CreateOrder(context.Background(), tt.req); err != consts.ErrInvalidOrderData {
				t.Errorf("expected ErrInvalidOrderData, got %v", err)
			}
			if len(store.inserted) != 0 {
				t.Errorf("expected no insert, got %d", len(store.inserted))
			}
		})
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	store := &fakeOrderStore{}
	svc := &OrderService{OrderStore: store}

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	start := time.Now()

	resp, err := svc.CreateOrder(context.Background(), &shop.CreateOrderReq{
		Name:      "Alice",
		Phone:     "123",
		LessonIDs: []string{first.Hex(), second.Hex()},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(store.inserted))
	}

	o := store.inserted[0]
	if resp.InsertedID != o.ID.Hex() {
		t.Errorf("expected insertedId %s, got %s", o.ID.Hex(), resp.InsertedID)
	}
	if o.Name != "Alice" || o.Phone != "123" {
		t.Errorf("unexpected order fields: %+v", o)
	}
	if len(o.LessonIDs) != 2 || o.LessonIDs[0] != first || o.LessonIDs[1] != second {
		t.Errorf("expected lesson ids parsed in order, got %v", o.LessonIDs)
	}
	if o.CreatedAt.Before(start) {
		t.Errorf("expected createdAt >= request time, got %v", o.CreatedAt)
	}
}

func TestCreateOrderInsertFailurePropagates(t *testing.T) {
	insertErr := errors.New("mongo: connection reset")
	svc := &OrderService{OrderStore: &fakeOrderStore{insertErr: insertErr}}

	_, err := svc.CreateOrder(context.Background(), &shop.CreateOrderReq{
		Name:      "Alice",
		Phone:     "123",
		LessonIDs: []string{primitive.NewObjectID().Hex()},
	})
	if !errors.Is(err, insertErr) {
		t.Errorf("expected insert error to propagate, got %v", err)
	}
}

func TestListOrdersNeverNil(t *testing.T) {
	svc := &OrderService{OrderStore: &fakeOrderStore{}}
	orders, err := svc.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}
	if orders == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
