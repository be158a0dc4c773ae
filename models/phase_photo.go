package model

import (
	"github.com/jinzhu/gorm"
)

// PhasePhoto 施工阶段照片模型
type PhasePhoto struct {
	gorm.Model
	ProjectID  uint   `gorm:"index:photo_project_id"`
	PhaseID    uint   `gorm:"index:photo_phase_id"`
	Name       string `gorm:"size:255"` // 展示文件名
	SourceName string `gorm:"size:255"` // 存储层物理路径
	Size       uint64
	Note       string `gorm:"size:255"`
}

// Create 创建照片记录
func (photo *PhasePhoto) Create() (uint, error) {
	if err := DB.Create(photo).Error; err != nil {
		return 0, err
	}
	return photo.ID, nil
}

// GetPhotosByProjectID 获取项目的全部施工照片
func GetPhotosByProjectID(projectID uint) []PhasePhoto {
	var photos []PhasePhoto
	DB.Where("project_id = ?", projectID).Order("id asc").Find(&photos)
	return photos
}

// GetPhotosByPhaseID 获取阶段的全部施工照片
func GetPhotosByPhaseID(phaseID uint) []PhasePhoto {
	var photos []PhasePhoto
	DB.Where("phase_id = ?", phaseID).Order("id asc").Find(&photos)
	return photos
}
