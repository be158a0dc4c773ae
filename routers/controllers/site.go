package controllers

import (
	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/conf"
	"github.com/zhuyun/ZhuYun/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// SiteConfig 获取站点全局配置
func SiteConfig(c *gin.Context) {
	options := model.GetSettingByNames(
		"siteName",
		"siteDes",
		"siteICPId",
		"register_enabled",
	)

	user := CurrentUser(c)
	res := map[string]interface{}{
		"title":           options["siteName"],
		"description":     options["siteDes"],
		"icp":             options["siteICPId"],
		"registerEnabled": model.IsTrueVal(options["register_enabled"]),
	}
	if user != nil {
		res["user"] = serializer.BuildUser(*user)
	}

	c.JSON(200, serializer.Response{Data: res})
}

// Ping 状态检查页面
func Ping(c *gin.Context) {
	c.JSON(200, serializer.Response{
		Code: 0,
		Data: conf.BackendVersion,
	})
}
