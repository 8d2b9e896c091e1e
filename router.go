package main

import (
	"lesson-shop/biz/adaptor/controller"
	"lesson-shop/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	p := provider.Get()

	r.GET("/", controller.Alive)
	r.GET("/health", controller.Health)

	lessons := &controller.LessonController{LessonService: p.LessonService}
	r.GET("/lessons", lessons.ListLessons)
	r.GET("/lessons/:id", lessons.GetLesson)
	r.PUT("/lessons/:id", lessons.UpdateLesson)
	r.GET("/search", lessons.SearchLessons)

	orders := &controller.OrderController{OrderService: p.OrderService}
	r.GET("/orders", orders.ListOrders)
	r.POST("/orders", orders.CreateOrder)

	// 静态图片服务，不开目录列表
	r.StaticFS("/images", &app.FS{
		Root:        p.Config.Images.Dir,
		PathRewrite: app.NewPathSlashesStripper(1),
	})
}
