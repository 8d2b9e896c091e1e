package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order 订单文档，创建后不可变。LessonIDs 只是引用，不校验课程是否存在。
type Order struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Phone     string               `bson:"phone" json:"phone"`
	LessonIDs []primitive.ObjectID `bson:"lessonIDs" json:"lessonIDs"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}
