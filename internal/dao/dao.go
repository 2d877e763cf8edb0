package dao

import (
	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gctx"
	"gorm.io/gorm"

	_ "github.com/gogf/gf/contrib/drivers/pgsql/v2"
)

var db *gorm.DB

// InitDB 初始化数据库连接并执行迁移
func InitDB() error {
	conn, err := initDatabase()
	if err != nil {
		return errors.Newf(errors.ErrDatabaseInit, "database initialization failed: %v", err)
	}
	db = conn
	return nil
}

// Initialized 数据库连接是否已建立，依赖数据库的测试用它决定跳过
func Initialized() bool {
	return db != nil
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	if db == nil {
		g.Log().Fatal(gctx.New(), "database connection not initialized")
	}
	return db
}
