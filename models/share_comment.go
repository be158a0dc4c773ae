package model

import (
	"github.com/jinzhu/gorm"
)

// ShareComment 分享留言模型
// 独立子表追加写入，主键即为留言顺序
type ShareComment struct {
	gorm.Model
	UUID       string `gorm:"type:varchar(36);unique_index"` // 对外标识
	ShareID    uint   `gorm:"index:comment_share_id"`
	AuthorName string `gorm:"size:50"`
	Content    string `gorm:"size:65535"`
}

// Create 追加留言
func (comment *ShareComment) Create() (uint, error) {
	if err := DB.Create(comment).Error; err != nil {
		return 0, err
	}
	return comment.ID, nil
}

// GetCommentsByShareID 获取分享的全部留言，按写入顺序排列
func GetCommentsByShareID(shareID uint) []ShareComment {
	var comments []ShareComment
	DB.Where("share_id = ?", shareID).Order("id asc").Find(&comments)
	return comments
}

// CountCommentsByShareID 统计分享的留言数
func CountCommentsByShareID(shareID uint) int {
	var total int
	DB.Model(&ShareComment{}).Where("share_id = ?", shareID).Count(&total)
	return total
}
