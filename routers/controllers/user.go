package controllers

import (
	"github.com/zhuyun/ZhuYun/pkg/serializer"
	"github.com/zhuyun/ZhuYun/service/user"

	"github.com/gin-gonic/gin"
)

// UserLogin 用户登录
func UserLogin(c *gin.Context) {
	var service user.UserLoginService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Login(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// UserLogout 用户退出登录
func UserLogout(c *gin.Context) {
	var service user.UserLogoutService
	res := service.Logout(c)
	c.JSON(200, res)
}

// UserMe 返回当前登录的用户
func UserMe(c *gin.Context) {
	currUser := CurrentUser(c)
	res := serializer.BuildUserResponse(*currUser)
	c.JSON(200, res)
}
