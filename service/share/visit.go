package share

import (
	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/limiter"
	"github.com/zhuyun/ZhuYun/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// ShareGetService 获取分享服务
type ShareGetService struct {
}

// ShareUnlockService 分享解锁服务
type ShareUnlockService struct {
	Password string `json:"password" binding:"required,max=255"`
}

// unlockLimiter 密码尝试限流器，按分享和来源IP分桶
var unlockLimiter = limiter.NewAttemptLimiter()

// Get 获取分享内容
// 访问计数在返回密码门之前就会累加，它是访问量而非解锁量
func (service *ShareGetService) Get(c *gin.Context) serializer.Response {
	shareCtx, _ := c.Get("share")
	share := shareCtx.(*model.Share)

	// 计数失败不阻塞访问
	share.Viewed()

	// 私密分享先返回密码门，不携带任何项目数据
	if share.IsPrivate() {
		return serializer.BuildShareLocked(share)
	}

	return serializer.BuildShareResolved(share, serializer.BuildProjectView(share))
}

// Unlock 校验密码并解锁分享
func (service *ShareUnlockService) Unlock(c *gin.Context) serializer.Response {
	shareCtx, _ := c.Get("share")
	share := shareCtx.(*model.Share)

	// 公开分享无需解锁，直接返回内容
	if !share.IsPrivate() {
		share.Viewed()
		return serializer.BuildShareResolved(share, serializer.BuildProjectView(share))
	}

	// 同一分享同一来源的尝试频率限制
	perMinute := model.GetIntSetting("share_unlock_rate", 10)
	burst := model.GetIntSetting("share_unlock_burst", 5)
	token := share.UUID + "|" + c.ClientIP()
	if !unlockLimiter.Allow(token, float64(perMinute)/60, burst) {
		return serializer.Err(serializer.CodeShareTooManyAttempts, "尝试次数过多，请稍后再试", nil)
	}

	matched, err := share.CheckPassword(service.Password)
	if err != nil || !matched {
		// 不提示密码错在哪里
		return serializer.Err(serializer.CodeShareInvalidPassword, "密码错误", nil)
	}

	// 解锁成功也是一次成功的访问
	share.Viewed()
	return serializer.BuildShareResolved(share, serializer.BuildProjectView(share))
}
