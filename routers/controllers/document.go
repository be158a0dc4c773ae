package controllers

import (
	"github.com/zhuyun/ZhuYun/pkg/serializer"
	"github.com/zhuyun/ZhuYun/service/document"

	"github.com/gin-gonic/gin"
)

// DocumentUpload 上传项目文档
func DocumentUpload(c *gin.Context) {
	var service document.UploadService
	if err := c.ShouldBind(&service); err == nil {
		res := service.Upload(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// DocumentList 列出项目文档
func DocumentList(c *gin.Context) {
	res := document.List(c, CurrentUser(c))
	c.JSON(200, res)
}

// DocumentSource 获取文档下载地址
func DocumentSource(c *gin.Context) {
	res := document.Source(c, CurrentUser(c))
	c.JSON(200, res)
}

// DocumentDownload 流式下载文档
func DocumentDownload(c *gin.Context) {
	res := document.Download(c, CurrentUser(c))
	// 响应已由文件流写出时不再输出JSON
	if res.Code != serializer.CodeNotSet {
		c.JSON(200, res)
	}
}

// DocumentDelete 删除文档
func DocumentDelete(c *gin.Context) {
	res := document.Delete(c, CurrentUser(c))
	c.JSON(200, res)
}
