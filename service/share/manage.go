package share

import (
	"net/url"
	"time"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/hashid"
	"github.com/zhuyun/ZhuYun/pkg/serializer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShareCreateService 创建新分享服务
type ShareCreateService struct {
	ProjectID string            `json:"project_id" binding:"required"`
	Private   bool              `json:"private"`
	Password  string            `json:"password" binding:"max=255"`
	Expire    int               `json:"expire"` // 有效期秒数，0为永久
	Options   model.ShareOption `json:"options"`
}

// ShareUpdateService 分享更新服务
type ShareUpdateService struct {
	IsActive *bool              `json:"is_active"`
	Expire   *int               `json:"expire"`
	Options  *model.ShareOption `json:"options"`
}

// Create 创建新分享
func (service *ShareCreateService) Create(c *gin.Context) serializer.Response {
	userCtx, _ := c.Get("user")
	user := userCtx.(*model.User)

	// 是否拥有权限
	if !user.Group.ShareEnabled {
		return serializer.Err(serializer.CodeNoPermissionErr, "您无权创建分享链接", nil)
	}

	// 项目是否属于当前用户
	projectID, err := hashid.DecodeHashID(service.ProjectID, hashid.ProjectID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "项目不存在", nil)
	}
	if _, err := model.GetProjectByIDAndOwner(projectID, user.ID); err != nil {
		return serializer.Err(serializer.CodeNotFound, "项目不存在", nil)
	}

	newShare := model.Share{
		UUID:              uuid.New().String(),
		ProjectID:         projectID,
		UserID:            user.ID,
		Type:              model.SharePublic,
		IsActive:          true,
		OptionsSerialized: service.Options,
	}

	// 私密分享存摘要，不存明文
	if service.Private {
		if service.Password == "" {
			return serializer.ParamErr("私密分享需要设置密码", nil)
		}
		newShare.Type = model.SharePrivate
		if err := newShare.SetPassword(service.Password); err != nil {
			return serializer.Err(serializer.CodeEncryptError, "无法设定分享密码", err)
		}
	}

	// 如果开启了自动过期
	if service.Expire > 0 {
		expires := time.Now().Add(time.Duration(service.Expire) * time.Second)
		newShare.Expires = &expires
	}

	if _, err := newShare.Create(); err != nil {
		return serializer.DBErr("无法创建分享", err)
	}

	siteURL := model.GetSettingByName("siteURL")
	shareURL, _ := url.Parse(siteURL)
	shareURL.Path = "/s/" + newShare.UUID

	return serializer.Response{
		Data: map[string]string{
			"key": newShare.UUID,
			"url": shareURL.String(),
		},
	}
}

// List 列出用户创建的分享
func List(c *gin.Context, user *model.User) serializer.Response {
	return serializer.BuildShareList(model.GetSharesByUserID(user.ID))
}

// Update 更新分享属性
func (service *ShareUpdateService) Update(c *gin.Context, user *model.User) serializer.Response {
	share, err := model.GetShareByUUID(c.Param("id"))
	if err != nil || share.UserID != user.ID {
		return serializer.Err(serializer.CodeNotFound, "分享不存在", nil)
	}

	if service.IsActive != nil {
		if err := share.Update(map[string]interface{}{"is_active": *service.IsActive}); err != nil {
			return serializer.DBErr("无法更新分享属性", err)
		}
	}

	if service.Expire != nil {
		var expires *time.Time
		if *service.Expire > 0 {
			newExpires := time.Now().Add(time.Duration(*service.Expire) * time.Second)
			expires = &newExpires
		}
		if err := share.Update(map[string]interface{}{"expires": expires}); err != nil {
			return serializer.DBErr("无法更新分享有效期", err)
		}
	}

	if service.Options != nil {
		share.OptionsSerialized = *service.Options
		if err := share.UpdateOptions(); err != nil {
			return serializer.DBErr("无法更新分享披露设置", err)
		}
	}

	return serializer.Response{}
}

// Delete 删除分享
func Delete(c *gin.Context, user *model.User) serializer.Response {
	share, err := model.GetShareByUUID(c.Param("id"))
	if err != nil || share.UserID != user.ID {
		return serializer.Err(serializer.CodeNotFound, "分享不存在", nil)
	}

	if err := share.Delete(); err != nil {
		return serializer.DBErr("分享删除失败", err)
	}

	return serializer.Response{}
}
