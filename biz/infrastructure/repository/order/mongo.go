package order

import (
	"context"
	"time"

	"lesson-shop/biz/infrastructure/config"
	"lesson-shop/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixOrderCacheKey = "cache:order"
	OrderCollectionName = "orders"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewOrderMongoMapper db: %s, collection: %s", config.Mongo.DB, OrderCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, OrderCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, order *Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
		order.CreatedAt = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, order)
	return err
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Order, error) {
	var orders []*Order
	err := m.conn.Find(ctx, &orders, bson.M{})
	if err != nil {
		return nil, err
	}
	return orders, nil
}
