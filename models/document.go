package model

import (
	"github.com/jinzhu/gorm"
)

// Document 项目文档模型，物理文件由存储驱动管理
type Document struct {
	gorm.Model
	ProjectID  uint   `gorm:"index:document_project_id"`
	UserID     uint   // 上传用户ID
	Name       string `gorm:"size:255"` // 展示文件名
	SourceName string `gorm:"size:255"` // 存储层物理路径
	Size       uint64
	Type       string `gorm:"size:50"` // 文档类别，如合同、图纸
}

// Create 创建文档记录
func (document *Document) Create() (uint, error) {
	if err := DB.Create(document).Error; err != nil {
		return 0, err
	}
	return document.ID, nil
}

// Delete 删除文档记录
func (document *Document) Delete() error {
	return DB.Delete(document).Error
}

// GetDocumentByID 用ID获取文档
func GetDocumentByID(ID interface{}) (Document, error) {
	var document Document
	result := DB.First(&document, ID)
	return document, result.Error
}

// GetDocumentsByProjectID 获取项目的全部文档
func GetDocumentsByProjectID(projectID uint) []Document {
	var documents []Document
	DB.Where("project_id = ?", projectID).Order("id desc").Find(&documents)
	return documents
}
