package serializer

import (
	"time"

	model "github.com/zhuyun/ZhuYun/models"

	"github.com/samber/lo"
)

// Comment 分享留言序列化
type Comment struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreateDate time.Time `json:"create_date"`
}

// BuildComment 构建单条留言响应
func BuildComment(comment *model.ShareComment) Response {
	return Response{Data: buildCommentItem(comment)}
}

// BuildCommentList 构建留言列表响应，保持写入顺序
func BuildCommentList(comments []model.ShareComment) Response {
	res := lo.Map(comments, func(comment model.ShareComment, _ int) Comment {
		return buildCommentItem(&comment)
	})

	return Response{Data: map[string]interface{}{
		"items": res,
		"total": len(res),
	}}
}

func buildCommentItem(comment *model.ShareComment) Comment {
	return Comment{
		ID:         comment.UUID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreateDate: comment.CreatedAt,
	}
}
