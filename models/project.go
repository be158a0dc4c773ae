package model

import (
	"time"

	"github.com/jinzhu/gorm"
)

const (
	// ProjectPlanning 筹备中
	ProjectPlanning = iota
	// ProjectInProgress 施工中
	ProjectInProgress
	// ProjectPaused 已停工
	ProjectPaused
	// ProjectFinished 已完工
	ProjectFinished
)

// Project 装修项目模型
type Project struct {
	gorm.Model
	Name        string `gorm:"size:100"`
	Description string `gorm:"size:65535"`
	Address     string `gorm:"size:255"` // 施工地址
	Status      int    // 项目状态
	OwnerID     uint   `gorm:"index:owner_id"` // 创建用户ID
	Budget      int64  // 预算，单位为分
	StartDate   *time.Time
	EndDate     *time.Time

	// 关联模型
	Owner User `gorm:"PRELOAD:false,association_autoupdate:false"`
}

// Create 创建项目
func (project *Project) Create() (uint, error) {
	if err := DB.Create(project).Error; err != nil {
		return 0, err
	}
	return project.ID, nil
}

// Update 更新项目属性
func (project *Project) Update(val map[string]interface{}) error {
	return DB.Model(project).Updates(val).Error
}

// Delete 删除项目及其子资源
func (project *Project) Delete() error {
	tx := DB.Begin()
	if err := tx.Error; err != nil {
		return err
	}

	for _, sub := range []interface{}{
		&Phase{}, &PhasePhoto{}, &Expense{}, &Material{}, &TeamMember{}, &Document{},
	} {
		if err := tx.Where("project_id = ?", project.ID).Delete(sub).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Delete(project).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetProjectByID 用ID获取项目
func GetProjectByID(ID interface{}) (Project, error) {
	var project Project
	result := DB.First(&project, ID)
	return project, result.Error
}

// GetProjectByIDAndOwner 用ID和创建者获取项目
func GetProjectByIDAndOwner(ID, ownerID uint) (Project, error) {
	var project Project
	result := DB.Where("id = ? and owner_id = ?", ID, ownerID).First(&project)
	return project, result.Error
}

// GetProjectsByOwnerID 获取用户创建的全部项目
func GetProjectsByOwnerID(ownerID uint) []Project {
	var projects []Project
	DB.Where("owner_id = ?", ownerID).Order("updated_at desc").Find(&projects)
	return projects
}

// CountProjectsByOwnerID 统计用户创建的项目数
func CountProjectsByOwnerID(ownerID uint) int {
	var total int
	DB.Model(&Project{}).Where("owner_id = ?", ownerID).Count(&total)
	return total
}
