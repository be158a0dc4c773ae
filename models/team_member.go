package model

import (
	"github.com/jinzhu/gorm"
)

// TeamMember 施工团队成员模型
type TeamMember struct {
	gorm.Model
	ProjectID uint   `gorm:"index:member_project_id"`
	Name      string `gorm:"size:50"`
	Role      string `gorm:"size:50"` // 工种，如木工、水电工
	Phone     string `gorm:"size:20"`
	DailyWage int64  // 日薪，单位为分
}

// Create 创建团队成员记录
func (member *TeamMember) Create() (uint, error) {
	if err := DB.Create(member).Error; err != nil {
		return 0, err
	}
	return member.ID, nil
}

// GetMembersByProjectID 获取项目的全部团队成员
func GetMembersByProjectID(projectID uint) []TeamMember {
	var members []TeamMember
	DB.Where("project_id = ?", projectID).Order("id asc").Find(&members)
	return members
}
