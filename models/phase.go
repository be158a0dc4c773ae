package model

import (
	"time"

	"github.com/jinzhu/gorm"
)

const (
	// PhasePending 未开始
	PhasePending = iota
	// PhaseInProgress 进行中
	PhaseInProgress
	// PhaseFinished 已完成
	PhaseFinished
)

// Phase 施工阶段模型
type Phase struct {
	gorm.Model
	ProjectID uint   `gorm:"index:phase_project_id"`
	Name      string `gorm:"size:100"`
	Note      string `gorm:"size:65535"`
	Status    int
	Progress  int // 完成进度百分比，0-100
	Sort      int // 阶段排序值，越小越靠前
	StartDate *time.Time
	EndDate   *time.Time
}

// Create 创建施工阶段
func (phase *Phase) Create() (uint, error) {
	if err := DB.Create(phase).Error; err != nil {
		return 0, err
	}
	return phase.ID, nil
}

// Update 更新阶段属性
func (phase *Phase) Update(val map[string]interface{}) error {
	return DB.Model(phase).Updates(val).Error
}

// GetPhaseByIDAndProject 获取属于指定项目的施工阶段
func GetPhaseByIDAndProject(ID interface{}, projectID uint) (Phase, error) {
	var phase Phase
	result := DB.Where("project_id = ?", projectID).First(&phase, ID)
	return phase, result.Error
}

// GetPhasesByProjectID 获取项目的全部施工阶段
func GetPhasesByProjectID(projectID uint) []Phase {
	var phases []Phase
	DB.Where("project_id = ?", projectID).Order("sort asc, id asc").Find(&phases)
	return phases
}
