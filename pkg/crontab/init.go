package crontab

import (
	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/robfig/cron/v3"
)

// Cron 定时任务
var Cron *cron.Cron

// Reload 重新启动定时任务
func Reload() {
	if Cron != nil {
		Cron.Stop()
	}
	Init()
}

// Init 初始化定时任务
func Init() {
	util.Log().Info("初始化定时任务...")
	// 读取cron日程设置
	options := model.GetSettingByNames(
		"cron_garbage_collect",
		"share_expire_sweep",
	)

	Cron = cron.New(cron.WithSeconds())
	for taskType, spec := range options {
		if spec == "" {
			continue
		}

		var handler func()
		switch taskType {
		case "cron_garbage_collect":
			handler = garbageCollect
		case "share_expire_sweep":
			handler = sweepExpiredShares
		default:
			util.Log().Warning("未知定时任务类型 [%s]，跳过", taskType)
			continue
		}

		if _, err := Cron.AddFunc(spec, handler); err != nil {
			util.Log().Warning("无法启动定时任务 [%s], %s", taskType, err)
		}
	}

	Cron.Start()
}
