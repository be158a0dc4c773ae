package user

import (
	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/serializer"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/gin-gonic/gin"
)

// UserLoginService 管理用户登录的服务
type UserLoginService struct {
	UserName string `form:"userName" json:"userName" binding:"required,email"`
	Password string `form:"Password" json:"Password" binding:"required,min=4,max=64"`
}

// Login 用户登录
func (service *UserLoginService) Login(c *gin.Context) serializer.Response {
	expectedUser, err := model.GetUserByEmail(service.UserName)
	// 一系列校验
	if err != nil {
		return serializer.Err(serializer.CodeCredentialInvalid, "用户邮箱或密码错误", err)
	}
	if authOK, _ := expectedUser.CheckPassword(service.Password); !authOK {
		return serializer.Err(serializer.CodeCredentialInvalid, "用户邮箱或密码错误", nil)
	}
	if expectedUser.Status == model.Baned {
		return serializer.Err(serializer.CodeNoPermissionErr, "该账号已被封禁", nil)
	}
	if expectedUser.Status == model.NotActivicated {
		return serializer.Err(serializer.CodeNoPermissionErr, "该账号未激活", nil)
	}

	// 登录成功，写入会话
	util.SetSession(c, "user_id", expectedUser.ID)

	return serializer.BuildUserResponse(expectedUser)
}

// UserLogoutService 管理注销的服务
type UserLogoutService struct {
}

// Logout 注销当前会话
func (service *UserLogoutService) Logout(c *gin.Context) serializer.Response {
	util.DeleteSession(c, "user_id")
	return serializer.Response{}
}
