package cache

import (
	"time"

	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
	gocache "github.com/patrickmn/go-cache"
)

// token -> operator 查询缓存，避免每个请求都打数据库
var operatorCache = gocache.New(5*time.Minute, 10*time.Minute)

// GetOperator 从缓存获取token对应的操作员
func GetOperator(token string) (*gormModel.Operator, bool) {
	if v, ok := operatorCache.Get(token); ok {
		if op, ok := v.(*gormModel.Operator); ok {
			return op, true
		}
	}
	return nil, false
}

// SetOperator 写入token对应的操作员
func SetOperator(token string, operator *gormModel.Operator) {
	operatorCache.Set(token, operator, gocache.DefaultExpiration)
}

// DeleteOperator 使token对应的缓存失效
func DeleteOperator(token string) {
	operatorCache.Delete(token)
}
