package config

import (
	"os"
	"path/filepath"
	"testing"

	"lesson-shop/biz/infrastructure/consts"
)

func clearEnv(t *testing.T) {
	t.Setenv(consts.EnvConfigPath, "")
	t.Setenv(consts.EnvMongoURL, "")
	t.Setenv(consts.EnvMongoDB, "")
	t.Setenv(consts.EnvPort, "")
}

func TestNewConfigDefaults(t *testing.T) {
	clearEnv(t)

	c, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if c.ListenOn != consts.DefaultListenOn {
		t.Errorf("expected ListenOn %s, got %s", consts.DefaultListenOn, c.ListenOn)
	}
	if c.Mongo.URL != consts.DefaultMongoURL {
		t.Errorf("expected Mongo.URL %s, got %s", consts.DefaultMongoURL, c.Mongo.URL)
	}
	if c.Mongo.DB != consts.DefaultMongoDB {
		t.Errorf("expected Mongo.DB %s, got %s", consts.DefaultMongoDB, c.Mongo.DB)
	}
	if c.Images.Dir != consts.DefaultImagesDir {
		t.Errorf("expected Images.Dir %s, got %s", consts.DefaultImagesDir, c.Images.Dir)
	}
	if c.Metrics.ListenOn != consts.DefaultMetricsOn {
		t.Errorf("expected Metrics.ListenOn %s, got %s", consts.DefaultMetricsOn, c.Metrics.ListenOn)
	}
	if len(c.Log.NoLogPaths) != 1 || c.Log.NoLogPaths[0] != "/health" {
		t.Errorf("expected NoLogPaths [/health], got %v", c.Log.NoLogPaths)
	}
	if GetConfig() != c {
		t.Error("expected GetConfig to return the loaded config")
	}
}

func TestNewConfigEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(consts.EnvMongoURL, "mongodb://mongo:27017")
	t.Setenv(consts.EnvMongoDB, "lessonShopTest")
	t.Setenv(consts.EnvPort, "4000")

	c, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if c.Mongo.URL != "mongodb://mongo:27017" {
		t.Errorf("expected env Mongo.URL to win, got %s", c.Mongo.URL)
	}
	if c.Mongo.DB != "lessonShopTest" {
		t.Errorf("expected env Mongo.DB to win, got %s", c.Mongo.DB)
	}
	if c.ListenOn != "0.0.0.0:4000" {
		t.Errorf("expected ListenOn 0.0.0.0:4000, got %s", c.ListenOn)
	}
}

func TestNewConfigFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte(`
Name: lesson-shop.api
ListenOn: 127.0.0.1:8080
Mongo:
  URL: mongodb://file:27017
  DB: fromFile
Cache:
  - Host: localhost:6379
Images:
  Dir: testdata
`)
	if err := os.WriteFile(path, yaml, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(consts.EnvConfigPath, path)
	t.Setenv(consts.EnvMongoDB, "envWins")

	c, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if c.ListenOn != "127.0.0.1:8080" {
		t.Errorf("expected ListenOn from file, got %s", c.ListenOn)
	}
	if c.Mongo.URL != "mongodb://file:27017" {
		t.Errorf("expected Mongo.URL from file, got %s", c.Mongo.URL)
	}
	if c.Mongo.DB != "envWins" {
		t.Errorf("expected env Mongo.DB to override file, got %s", c.Mongo.DB)
	}
	if c.Images.Dir != "testdata" {
		t.Errorf("expected Images.Dir from file, got %s", c.Images.Dir)
	}
}
