package crontab

import (
	"time"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/cache"
	"github.com/zhuyun/ZhuYun/pkg/util"
)

// garbageCollect 清理内存缓存中已过期的条目
func garbageCollect() {
	if store, ok := cache.Store.(*cache.MemoStore); ok {
		store.GarbageCollect()
	}

	util.Log().Info("定时任务 [cron_garbage_collect] 执行完毕")
}

// sweepExpiredShares 停用过期超出宽限期的分享
// 过期本身是软禁用，这里只在宽限期后回收 is_active，从不删除记录
func sweepExpiredShares() {
	grace := model.GetIntSetting("share_expire_grace", 604800)
	affected := model.DeactivateExpiredShares(time.Duration(grace) * time.Second)
	if affected > 0 {
		util.Log().Info("停用 %d 个过期分享", affected)
	}

	util.Log().Info("定时任务 [share_expire_sweep] 执行完毕")
}
