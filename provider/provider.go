package provider

import (
	"lesson-shop/biz/application/service"
	"lesson-shop/biz/infrastructure/config"
	"lesson-shop/biz/infrastructure/repository/lesson"
	"lesson-shop/biz/infrastructure/repository/order"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config        *config.Config
	LessonService service.ILessonService
	OrderService  service.IOrderService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.LessonServiceSet,
	service.OrderServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	lesson.NewMongoMapper,
	wire.Bind(new(service.LessonStore), new(*lesson.MongoMapper)),
	order.NewMongoMapper,
	wire.Bind(new(service.OrderStore), new(*order.MongoMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
