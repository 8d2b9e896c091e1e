package lesson

import (
	"context"
	"errors"

	"lesson-shop/biz/infrastructure/config"
	"lesson-shop/biz/infrastructure/consts"
	"lesson-shop/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixLessonCacheKey = "cache:lesson"
	LessonCollectionName = "lessons"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewLessonMongoMapper db: %s, collection: %s", config.Mongo.DB, LessonCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, LessonCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// FindAll 返回全部课程，保持存储顺序，不分页
func (m *MongoMapper) FindAll(ctx context.Context) ([]*Lesson, error) {
	var lessons []*Lesson
	err := m.conn.Find(ctx, &lessons, bson.M{})
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var l Lesson
	err = m.conn.FindOneNoCache(ctx, &l, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &l, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// UpdateFields 浅合并：仅写入给到的字段，其余字段不动。
// 未命中任何文档不算错误（与更新零条的行为保持一致）。
func (m *MongoMapper) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{"$set": fields})
	return err
}

func (m *MongoMapper) InsertMany(ctx context.Context, lessons []*Lesson) error {
	docs := make([]any, 0, len(lessons))
	for _, l := range lessons {
		if l.ID.IsZero() {
			l.ID = primitive.NewObjectID()
		}
		docs = append(docs, l)
	}
	_, err := m.conn.InsertMany(ctx, docs)
	return err
}

func (m *MongoMapper) Count(ctx context.Context) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{})
}

func (m *MongoMapper) DeleteAll(ctx context.Context) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{})
	return err
}
