package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/conf"
	"github.com/zhuyun/ZhuYun/pkg/hashid"
	"github.com/zhuyun/ZhuYun/pkg/serializer"
	"github.com/zhuyun/ZhuYun/pkg/storage"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadService 上传项目文档服务
type UploadService struct {
	Type string `form:"type" binding:"max=50"`
}

// ownedProject 解析路径中的项目标识并校验归属
func ownedProject(c *gin.Context, user *model.User) (*model.Project, *serializer.Response) {
	id, err := hashid.DecodeHashID(c.Param("id"), hashid.ProjectID)
	if err != nil {
		res := serializer.Err(serializer.CodeNotFound, "项目不存在", nil)
		return nil, &res
	}

	project, err := model.GetProjectByIDAndOwner(id, user.ID)
	if err != nil {
		res := serializer.Err(serializer.CodeNotFound, "项目不存在", nil)
		return nil, &res
	}
	return &project, nil
}

// ownedDocument 解析路径中的文档标识并校验归属
func ownedDocument(c *gin.Context, user *model.User) (*model.Document, *serializer.Response) {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return nil, errRes
	}

	did, err := hashid.DecodeHashID(c.Param("did"), hashid.DocumentID)
	if err != nil {
		res := serializer.Err(serializer.CodeNotFound, "文档不存在", nil)
		return nil, &res
	}

	document, err := model.GetDocumentByID(did)
	if err != nil || document.ProjectID != project.ID {
		res := serializer.Err(serializer.CodeNotFound, "文档不存在", nil)
		return nil, &res
	}
	return &document, nil
}

// Upload 上传项目文档
func (service *UploadService) Upload(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	file, err := c.FormFile("file")
	if err != nil {
		return serializer.ParamErr("未上传任何文件", err)
	}

	// 文档大小限制
	maxSize := model.GetIntSetting("max_document_size", 100<<20)
	if file.Size > int64(maxSize) {
		return serializer.ParamErr("文件大小超出限制", nil)
	}

	src, err := file.Open()
	if err != nil {
		return serializer.Err(serializer.CodeIOFailed, "无法读取上传文件", err)
	}
	defer src.Close()

	// 物理路径按项目分目录，文件名用随机标识防止冲突
	sourceName := fmt.Sprintf("docs/%d/%s%s",
		project.ID, uuid.New().String(), path.Ext(file.Filename))
	if err := storage.Instance.Put(c.Request.Context(), src, sourceName, uint64(file.Size)); err != nil {
		return serializer.Err(serializer.CodeIOFailed, "无法保存文件", err)
	}

	document := model.Document{
		ProjectID:  project.ID,
		UserID:     user.ID,
		Name:       file.Filename,
		SourceName: sourceName,
		Size:       uint64(file.Size),
		Type:       service.Type,
	}
	if _, err := document.Create(); err != nil {
		// 记录创建失败时回收物理文件
		if delErr := storage.Instance.Delete(context.Background(), sourceName); delErr != nil {
			util.Log().Warning("无法清理文档物理文件 %s, %s", sourceName, delErr)
		}
		return serializer.DBErr("无法保存文档记录", err)
	}

	return serializer.Response{Data: map[string]string{
		"id": hashid.HashID(document.ID, hashid.DocumentID),
	}}
}

// List 列出项目文档
func List(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}
	return serializer.BuildDocumentList(model.GetDocumentsByProjectID(project.ID))
}

// Source 获取文档下载地址
// S3存储返回预签名地址，本地存储返回应用内下载地址
func Source(c *gin.Context, user *model.User) serializer.Response {
	document, errRes := ownedDocument(c, user)
	if errRes != nil {
		return *errRes
	}

	if conf.StorageConfig.Type == "s3" {
		signedURL, err := storage.Instance.Source(c.Request.Context(), document.SourceName, 3600)
		if err != nil {
			return serializer.Err(serializer.CodeIOFailed, "无法生成下载地址", err)
		}
		return serializer.Response{Data: map[string]string{"url": signedURL}}
	}

	return serializer.Response{Data: map[string]string{
		"url": fmt.Sprintf("/api/v1/projects/%s/documents/%s/download",
			c.Param("id"), c.Param("did")),
	}}
}

// Download 流式输出文档内容，按用户组限速
func Download(c *gin.Context, user *model.User) serializer.Response {
	document, errRes := ownedDocument(c, user)
	if errRes != nil {
		return *errRes
	}

	rs, err := storage.Instance.Get(c.Request.Context(), document.SourceName)
	if err != nil {
		return serializer.Err(serializer.CodeIOFailed, "无法读取文件", err)
	}
	defer rs.Close()

	limited := storage.WithSpeedLimit(rs, user.Group.SpeedLimit)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, document.Name))

	// S3文件流不支持随机读取，只能顺序输出，不支持Range请求
	if conf.StorageConfig.Type == "s3" {
		c.Header("Content-Length", strconv.FormatUint(document.Size, 10))
		c.Header("Content-Type", "application/octet-stream")
		if _, err := io.Copy(c.Writer, limited); err != nil {
			util.Log().Warning("文档 %q 输出中断, %s", document.Name, err)
		}
		return serializer.Response{Code: serializer.CodeNotSet}
	}

	http.ServeContent(c.Writer, c.Request, document.Name, document.UpdatedAt, limited)

	return serializer.Response{Code: serializer.CodeNotSet}
}

// Delete 删除文档及其物理文件
func Delete(c *gin.Context, user *model.User) serializer.Response {
	document, errRes := ownedDocument(c, user)
	if errRes != nil {
		return *errRes
	}

	if err := document.Delete(); err != nil {
		return serializer.DBErr("无法删除文档记录", err)
	}

	// 物理文件删除失败只记录日志
	if err := storage.Instance.Delete(context.Background(), document.SourceName); err != nil {
		util.Log().Warning("无法删除文档物理文件 %s, %s", document.SourceName, err)
	}

	return serializer.Response{}
}
