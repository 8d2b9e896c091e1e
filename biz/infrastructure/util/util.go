package util

import (
	"encoding/json"

	"lesson-shop/biz/infrastructure/util/log"
)

// JSONF 序列化为json字符串，仅用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("JSONF fail, v=%v, err=%v", v, err)
	}
	return string(data)
}
