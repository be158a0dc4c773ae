package model

import (
	"github.com/jinzhu/gorm"
)

// Material 建材记录模型
type Material struct {
	gorm.Model
	ProjectID uint   `gorm:"index:material_project_id"`
	Name      string `gorm:"size:100"`
	Spec      string `gorm:"size:100"` // 规格型号
	Brand     string `gorm:"size:100"`
	Unit      string `gorm:"size:20"` // 计量单位
	Quantity  int
	UnitPrice int64  // 单价，单位为分
	Supplier  string `gorm:"size:100"`
}

// Create 创建建材记录
func (material *Material) Create() (uint, error) {
	if err := DB.Create(material).Error; err != nil {
		return 0, err
	}
	return material.ID, nil
}

// GetMaterialsByProjectID 获取项目的全部建材记录
func GetMaterialsByProjectID(projectID uint) []Material {
	var materials []Material
	DB.Where("project_id = ?", projectID).Order("id asc").Find(&materials)
	return materials
}
