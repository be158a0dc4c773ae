package share

import (
	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/email"
	"github.com/zhuyun/ZhuYun/pkg/serializer"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentListService 获取分享留言服务
type CommentListService struct {
}

// CommentCreateService 追加分享留言服务
type CommentCreateService struct {
	AuthorName string `json:"author_name" binding:"required,max=50"`
	Content    string `json:"content" binding:"required,max=65535"`
}

// List 列出分享的全部留言，按写入顺序
func (service *CommentListService) List(c *gin.Context) serializer.Response {
	shareCtx, _ := c.Get("share")
	share := shareCtx.(*model.Share)

	// 留言关闭后，已有留言同样不可见
	if !share.OptionsSerialized.AllowComments {
		return serializer.Err(serializer.CodeShareCommentsDisabled, "此分享未开启留言", nil)
	}

	return serializer.BuildCommentList(model.GetCommentsByShareID(share.ID))
}

// Create 追加留言
func (service *CommentCreateService) Create(c *gin.Context) serializer.Response {
	shareCtx, _ := c.Get("share")
	share := shareCtx.(*model.Share)

	// 分享未开启留言
	if !share.OptionsSerialized.AllowComments {
		return serializer.Err(serializer.CodeShareCommentsDisabled, "此分享未开启留言", nil)
	}

	// 留言人和内容去除空白后不能为空
	if util.IsEmptyAfterTrim(service.AuthorName) || util.IsEmptyAfterTrim(service.Content) {
		return serializer.ParamErr("留言人和内容不能为空", nil)
	}

	comment := model.ShareComment{
		UUID:       uuid.New().String(),
		ShareID:    share.ID,
		AuthorName: service.AuthorName,
		Content:    service.Content,
	}
	if _, err := comment.Create(); err != nil {
		return serializer.DBErr("无法保存留言", err)
	}

	// 通知分享创建者，失败不影响留言结果
	if model.IsTrueVal(model.GetSettingByName("share_comment_notify")) {
		go notifyCreator(share, &comment)
	}

	return serializer.BuildComment(&comment)
}

func notifyCreator(share *model.Share, comment *model.ShareComment) {
	creator := share.GetCreator()
	if creator.Email == "" {
		return
	}

	title, body := email.NewCommentNotify(
		creator.Nick,
		share.GetProject().Name,
		comment.AuthorName,
		comment.Content,
	)
	if err := email.Send(creator.Email, title, body); err != nil {
		util.Log().Warning("无法发送留言通知邮件, %s", err)
	}
}
