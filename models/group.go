package model

import (
	"github.com/jinzhu/gorm"
)

// Group 用户组模型
type Group struct {
	gorm.Model
	Name         string // 用户组名称
	ShareEnabled bool   // 是否允许创建分享链接
	SpeedLimit   int    // 文档下载限速，单位 byte/s，0 为不限制
	MaxProjects  int    // 可创建项目数上限，负值为不限制
}

// GetGroupByID 用ID获取用户组
func GetGroupByID(ID interface{}) (Group, error) {
	var group Group
	result := DB.First(&group, ID)
	return group, result.Error
}
