// seed 向 lessons 集合写入内置的课程数据。
// 集合非空时跳过，-force 会清空后重新写入。
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"os"

	"lesson-shop/biz/infrastructure/config"
	"lesson-shop/biz/infrastructure/repository/lesson"
	"lesson-shop/biz/infrastructure/util/log"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

//go:embed lessons.json
var lessonsJSON []byte

var force = flag.Bool("force", false, "清空 lessons 集合后重新写入")

func main() {
	flag.Parse()

	c, err := config.NewConfig()
	if err != nil {
		log.Error("seed load config fail: %v", err)
		os.Exit(1)
	}
	mapper := lesson.NewMongoMapper(c)
	ctx := context.Background()

	count, err := mapper.Count(ctx)
	if err != nil {
		log.Error("seed count lessons fail: %v", err)
		os.Exit(1)
	}
	if count > 0 && !*force {
		log.Info("lessons already seeded, count=%d", count)
		return
	}
	if *force {
		if err := mapper.DeleteAll(ctx); err != nil {
			log.Error("seed clear lessons fail: %v", err)
			os.Exit(1)
		}
	}

	var docs []map[string]any
	if err := json.Unmarshal(lessonsJSON, &docs); err != nil {
		log.Error("seed parse dataset fail: %v", err)
		os.Exit(1)
	}
	lessons := lo.Map(docs, func(doc map[string]any, _ int) *lesson.Lesson {
		l := new(lesson.Lesson)
		if err := mapstructure.Decode(doc, l); err != nil {
			log.Error("seed decode doc fail: %v, doc=%v", err, doc)
			os.Exit(1)
		}
		return l
	})

	if err := mapper.InsertMany(ctx, lessons); err != nil {
		log.Error("seed insert lessons fail: %v", err)
		os.Exit(1)
	}
	log.Info("seeded %d lessons into %s.%s", len(lessons), c.Mongo.DB, lesson.LessonCollectionName)
}
