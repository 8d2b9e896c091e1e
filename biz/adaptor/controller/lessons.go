package controller

import (
	"context"
	"encoding/json"

	"lesson-shop/biz/adaptor"
	"lesson-shop/biz/application/dto/shop"
	"lesson-shop/biz/application/service"
	"lesson-shop/biz/infrastructure/consts"
	"lesson-shop/biz/infrastructure/util"
	"lesson-shop/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
)

type LessonController struct {
	LessonService service.ILessonService
}

func (ctl *LessonController) ListLessons(ctx context.Context, c *app.RequestContext) {
	lessons, err := ctl.LessonService.ListLessons(ctx)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	adaptor.OK(c, lessons)
}

func (ctl *LessonController) GetLesson(ctx context.Context, c *app.RequestContext) {
	var req shop.GetLessonReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.ErrInvalidObjectId)
		return
	}
	l, err := ctl.LessonService.GetLesson(ctx, &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	adaptor.OK(c, l)
}

func (ctl *LessonController) SearchLessons(ctx context.Context, c *app.RequestContext) {
	var req shop.SearchLessonsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.Fail(ctx, c, consts.ErrInvalidParams)
		return
	}
	log.CtxInfo(ctx, "SearchLessons req=%s", util.JSONF(&req))
	lessons, err := ctl.LessonService.SearchLessons(ctx, &req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	adaptor.OK(c, lessons)
}

// UpdateLesson body 为任意字段集合，解不出 json 对象与更新失败同样按
// ErrUpdate 返回
func (ctl *LessonController) UpdateLesson(ctx context.Context, c *app.RequestContext) {
	req := &shop.UpdateLessonReq{ID: c.Param("id")}
	if err := json.Unmarshal(c.Request.Body(), &req.Fields); err != nil {
		adaptor.Fail(ctx, c, consts.ErrUpdate)
		return
	}
	log.CtxInfo(ctx, "UpdateLesson id=%s fields=%s", req.ID, util.JSONF(req.Fields))
	resp, err := ctl.LessonService.UpdateLesson(ctx, req)
	if err != nil {
		adaptor.Fail(ctx, c, err)
		return
	}
	adaptor.OK(c, resp)
}
