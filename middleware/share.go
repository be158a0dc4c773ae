package middleware

import (
	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// ShareAvailable 检查分享是否可用
// 标识格式不合法的请求在查库前即被拒绝；
// 已停用与不存在的分享返回同样的未找到响应，不泄露存在性
func ShareAvailable() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *model.User
		if userCtx, ok := c.Get("user"); ok {
			user = userCtx.(*model.User)
		} else {
			user = model.NewAnonymousUser()
		}

		id := c.Param("id")
		if !model.IsShareUUID(id) {
			c.JSON(200, serializer.Err(serializer.CodeShareInvalidID, "分享标识格式错误", nil))
			c.Abort()
			return
		}

		share, err := model.GetActiveShareByUUID(id)
		if err != nil {
			c.JSON(200, serializer.Err(serializer.CodeNotFound, "分享不存在或已失效", nil))
			c.Abort()
			return
		}

		// 过期与未找到是不同的结果，但同样不返回项目数据
		if share.Expired() {
			c.JSON(200, serializer.Err(serializer.CodeShareExpired, "分享已过期", nil))
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("share", share)
		c.Next()
	}
}

// ShareOwner 检查当前登录用户是否为分享所有者
func ShareOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *model.User
		if userCtx, ok := c.Get("user"); ok {
			user = userCtx.(*model.User)
		} else {
			c.JSON(200, serializer.CheckLogin())
			c.Abort()
			return
		}

		if share, ok := c.Get("share"); ok {
			if share.(*model.Share).UserID != user.ID {
				c.JSON(200, serializer.Err(serializer.CodeNotFound, "分享不存在", nil))
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
