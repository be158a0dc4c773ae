package bootstrap

import (
	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/cache"
	"github.com/zhuyun/ZhuYun/pkg/conf"
	"github.com/zhuyun/ZhuYun/pkg/crontab"
	"github.com/zhuyun/ZhuYun/pkg/email"
	"github.com/zhuyun/ZhuYun/pkg/storage"
	"github.com/zhuyun/ZhuYun/pkg/storage/local"
	"github.com/zhuyun/ZhuYun/pkg/storage/s3"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/gin-gonic/gin"
)

// Init 初始化启动
func Init(path string) {
	InitApplication()
	conf.Init(path)
	// Debug 关闭时，切换为生产模式
	if !conf.SystemConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	cache.Init()
	model.Init()
	initStorage()
	email.Init()
	crontab.Init()
}

// initStorage 根据配置装配文档存储驱动
func initStorage() {
	switch conf.StorageConfig.Type {
	case "s3":
		driver, err := s3.NewDriver()
		if err != nil {
			util.Log().Panic("无法初始化S3存储驱动, %s", err)
		}
		storage.Instance = driver
	default:
		storage.Instance = local.NewDriver(conf.StorageConfig.Dir)
	}
}
