package service

import (
	"context"
	"regexp"

	"lesson-shop/biz/application/dto/shop"
	"lesson-shop/biz/infrastructure/consts"
	"lesson-shop/biz/infrastructure/repository/lesson"
	"lesson-shop/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

// LessonStore 由 lesson.MongoMapper 实现，测试时可替换
type LessonStore interface {
	FindAll(ctx context.Context) ([]*lesson.Lesson, error)
	FindOne(ctx context.Context, id string) (*lesson.Lesson, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

type ILessonService interface {
	ListLessons(ctx context.Context) ([]*lesson.Lesson, error)
	GetLesson(ctx context.Context, req *shop.GetLessonReq) (*lesson.Lesson, error)
	SearchLessons(ctx context.Context, req *shop.SearchLessonsReq) ([]*lesson.Lesson, error)
	UpdateLesson(ctx context.Context, req *shop.UpdateLessonReq) (*shop.UpdateLessonResp, error)
}

type LessonService struct {
	LessonStore LessonStore
}

var LessonServiceSet = wire.NewSet(
	wire.Struct(new(LessonService), "*"),
	wire.Bind(new(ILessonService), new(*LessonService)),
)

func (s *LessonService) ListLessons(ctx context.Context) ([]*lesson.Lesson, error) {
	lessons, err := s.LessonStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []*lesson.Lesson{}
	}
	return lessons, nil
}

func (s *LessonService) GetLesson(ctx context.Context, req *shop.GetLessonReq) (*lesson.Lesson, error) {
	return s.LessonStore.FindOne(ctx, req.ID)
}

// SearchLessons 查询词原样作为大小写不敏感的子串模式，空串匹配全部。
// 模式编译失败与库读取失败一样走默认错误路径。
func (s *LessonService) SearchLessons(ctx context.Context, req *shop.SearchLessonsReq) ([]*lesson.Lesson, error) {
	re, err := regexp.Compile("(?i)" + req.Q)
	if err != nil {
		return nil, err
	}
	lessons, err := s.LessonStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(lessons, func(l *lesson.Lesson, _ int) bool {
		return l.Matches(re)
	}), nil
}

// UpdateLesson 所有失败（非法id、空字段集、写入失败）统一归为 ErrUpdate，
// 未命中文档也返回 ok
func (s *LessonService) UpdateLesson(ctx context.Context, req *shop.UpdateLessonReq) (*shop.UpdateLessonResp, error) {
	if len(req.Fields) == 0 {
		return nil, consts.ErrUpdate
	}
	if err := s.LessonStore.UpdateFields(ctx, req.ID, req.Fields); err != nil {
		log.CtxError(ctx, "update lesson %s fail: %v", req.ID, err)
		return nil, consts.ErrUpdate
	}
	return &shop.UpdateLessonResp{Ok: true}, nil
}
