package main

import (
	"lesson-shop/biz/adaptor"
	"lesson-shop/biz/infrastructure/config"
	"lesson-shop/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/samber/lo"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	otel.SetTextMapPropagator(b3.New())
	tracer, cfg := hertztracing.NewServerTracer()

	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(c.Metrics.ListenOn, c.Metrics.Path)),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))

	allowOrigins := []string{"*"}
	if c.Cors != nil && len(c.Cors.AllowOrigins) > 0 {
		allowOrigins = c.Cors.AllowOrigins
	}
	h.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return lo.Contains(allowOrigins, "*") || lo.Contains(allowOrigins, origin)
		},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	h.Use(adaptor.AccessLog(c))

	customizedRegister(h)
	h.Spin()
}
