package config

import (
	"os"

	"lesson-shop/biz/infrastructure/consts"
	"lesson-shop/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
)

// 未指定 CONFIG_PATH 时走本地默认配置
var defaultConfig = []byte(`
Name: lesson-shop.api
ListenOn: ` + consts.DefaultListenOn + `
Mongo:
  URL: ` + consts.DefaultMongoURL + `
  DB: ` + consts.DefaultMongoDB + `
Cache:
  - Host: localhost:6379
`)

var config *Config

type Config struct {
	service.ServiceConf
	ListenOn string
	Mongo    struct {
		URL string
		DB  string
	}
	Cache   cache.CacheConf
	Cors    *CorsConfig   `json:",optional"`
	Images  ImagesConfig  `json:",optional"`
	Metrics MetricsConfig `json:",optional"`
	Log     LogConfig     `json:",optional"`
}

type LogConfig struct {
	NoLogPaths []string `json:",optional"`
}

type CorsConfig struct {
	AllowOrigins []string `json:",optional"`
}

type ImagesConfig struct {
	Dir string `json:",optional"`
}

type MetricsConfig struct {
	ListenOn string `json:",optional"`
	Path     string `json:",optional"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if path := os.Getenv(consts.EnvConfigPath); path != "" {
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(defaultConfig, c)
		if err != nil {
			return nil, err
		}
	}

	// 环境变量优先于配置文件
	if url := os.Getenv(consts.EnvMongoURL); url != "" {
		c.Mongo.URL = url
	}
	if db := os.Getenv(consts.EnvMongoDB); db != "" {
		c.Mongo.DB = db
	}
	if port := os.Getenv(consts.EnvPort); port != "" {
		c.ListenOn = "0.0.0.0:" + port
	}

	if c.Images.Dir == "" {
		c.Images.Dir = consts.DefaultImagesDir
	}
	if c.Metrics.ListenOn == "" {
		c.Metrics.ListenOn = consts.DefaultMetricsOn
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if len(c.Log.NoLogPaths) == 0 {
		c.Log.NoLogPaths = []string{"/health"}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
