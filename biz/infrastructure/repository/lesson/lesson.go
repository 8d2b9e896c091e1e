package lesson

import (
	"encoding/json"
	"regexp"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson 课程文档。除了下面的固定字段外，客户端可以通过更新接口
// 写入任意字段，Extra 原样保留这些字段（不做 schema 校验）。
type Lesson struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" mapstructure:"-"`
	Topic    string             `bson:"topic" mapstructure:"topic"`
	Location string             `bson:"location" mapstructure:"location"`
	Price    any                `bson:"price" mapstructure:"price"`
	Space    any                `bson:"space" mapstructure:"space"`
	Image    string             `bson:"image,omitempty" mapstructure:"image"`
	Extra    map[string]any     `bson:",inline" mapstructure:",remain"`
}

// MarshalJSON 平铺 Extra，id 输出为 hex 字符串
func (l Lesson) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(l.Extra)+6)
	for k, v := range l.Extra {
		doc[k] = v
	}
	doc["id"] = l.ID.Hex()
	doc["topic"] = l.Topic
	doc["location"] = l.Location
	doc["price"] = l.Price
	doc["space"] = l.Space
	if l.Image != "" {
		doc["image"] = l.Image
	}
	return json.Marshal(doc)
}

// Matches 四个字段任一命中即匹配，数字字段按字符串表示参与匹配
func (l *Lesson) Matches(re *regexp.Regexp) bool {
	return re.MatchString(l.Topic) ||
		re.MatchString(l.Location) ||
		re.MatchString(cast.ToString(l.Price)) ||
		re.MatchString(cast.ToString(l.Space))
}
