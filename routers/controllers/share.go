package controllers

import (
	"github.com/zhuyun/ZhuYun/service/share"

	"github.com/gin-gonic/gin"
)

// GetShare 查看分享
func GetShare(c *gin.Context) {
	var service share.ShareGetService
	res := service.Get(c)
	c.JSON(200, res)
}

// UnlockShare 校验密码并解锁分享
func UnlockShare(c *gin.Context) {
	var service share.ShareUnlockService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Unlock(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ListShareComments 列出分享留言
func ListShareComments(c *gin.Context) {
	var service share.CommentListService
	res := service.List(c)
	c.JSON(200, res)
}

// CreateShareComment 追加分享留言
func CreateShareComment(c *gin.Context) {
	var service share.CommentCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// CreateShare 创建分享
func CreateShare(c *gin.Context) {
	var service share.ShareCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ListShares 列出当前用户创建的分享
func ListShares(c *gin.Context) {
	res := share.List(c, CurrentUser(c))
	c.JSON(200, res)
}

// UpdateShare 更新分享属性
func UpdateShare(c *gin.Context) {
	var service share.ShareUpdateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Update(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// DeleteShare 删除分享
func DeleteShare(c *gin.Context) {
	res := share.Delete(c, CurrentUser(c))
	c.JSON(200, res)
}
