package consts

// 数据库相关
const (
	ID        = "_id"
	Topic     = "topic"
	Location  = "location"
	Price     = "price"
	Space     = "space"
	Image     = "image"
	Name      = "name"
	Phone     = "phone"
	LessonIDs = "lessonIDs"
	CreatedAt = "createdAt"
)

// http
const (
	ContentTypeJson = "application/json"
	HeaderRequestID = "X-Request-ID"
)

// 默认配置
const (
	DefaultListenOn  = "0.0.0.0:3000"
	DefaultMongoURL  = "mongodb://localhost:27017"
	DefaultMongoDB   = "lessonShop"
	DefaultImagesDir = "images"
	DefaultMetricsOn = ":9091"
)

// 环境变量，三项独立覆盖配置
const (
	EnvConfigPath = "CONFIG_PATH"
	EnvMongoURL   = "MONGO_URL"
	EnvMongoDB    = "MONGO_DB"
	EnvPort       = "PORT"
)
