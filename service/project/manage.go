package project

import (
	"time"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/hashid"
	"github.com/zhuyun/ZhuYun/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// ProjectCreateService 创建项目服务
type ProjectCreateService struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=65535"`
	Address     string `json:"address" binding:"max=255"`
	Budget      int64  `json:"budget" binding:"min=0"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// ProjectUpdateService 更新项目服务
type ProjectUpdateService struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	Status      *int    `json:"status" binding:"omitempty,min=0,max=3"`
	Budget      *int64  `json:"budget" binding:"omitempty,min=0"`
}

// ownedProject 解析路径中的项目标识并校验归属
func ownedProject(c *gin.Context, user *model.User) (*model.Project, *serializer.Response) {
	id, err := hashid.DecodeHashID(c.Param("id"), hashid.ProjectID)
	if err != nil {
		res := serializer.Err(serializer.CodeNotFound, "项目不存在", nil)
		return nil, &res
	}

	project, err := model.GetProjectByIDAndOwner(id, user.ID)
	if err != nil {
		res := serializer.Err(serializer.CodeNotFound, "项目不存在", nil)
		return nil, &res
	}
	return &project, nil
}

// parseDate 解析 2006-01-02 格式日期，空串返回nil
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		return &date
	}
	return nil
}

// Create 创建项目
func (service *ProjectCreateService) Create(c *gin.Context, user *model.User) serializer.Response {
	// 用户组项目数限制
	if limit := user.Group.MaxProjects; limit >= 0 {
		if model.CountProjectsByOwnerID(user.ID) >= limit {
			return serializer.Err(serializer.CodeNoPermissionErr, "项目数已达上限", nil)
		}
	}

	project := model.Project{
		Name:        service.Name,
		Description: service.Description,
		Address:     service.Address,
		Status:      model.ProjectPlanning,
		OwnerID:     user.ID,
		Budget:      service.Budget,
		StartDate:   parseDate(service.StartDate),
		EndDate:     parseDate(service.EndDate),
	}
	if _, err := project.Create(); err != nil {
		return serializer.DBErr("无法创建项目", err)
	}

	return serializer.BuildProjectResponse(project)
}

// List 列出当前用户的项目
func List(c *gin.Context, user *model.User) serializer.Response {
	return serializer.BuildProjectList(model.GetProjectsByOwnerID(user.ID))
}

// Get 获取单个项目
func Get(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}
	return serializer.BuildProjectResponse(*project)
}

// Update 更新项目属性
func (service *ProjectUpdateService) Update(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	updates := map[string]interface{}{}
	if service.Name != nil {
		updates["name"] = *service.Name
	}
	if service.Description != nil {
		updates["description"] = *service.Description
	}
	if service.Address != nil {
		updates["address"] = *service.Address
	}
	if service.Status != nil {
		updates["status"] = *service.Status
	}
	if service.Budget != nil {
		updates["budget"] = *service.Budget
	}

	if len(updates) > 0 {
		if err := project.Update(updates); err != nil {
			return serializer.DBErr("无法更新项目", err)
		}
	}

	return serializer.BuildProjectResponse(*project)
}

// Delete 删除项目及其全部子资源
func Delete(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	if err := project.Delete(); err != nil {
		return serializer.DBErr("无法删除项目", err)
	}
	return serializer.Response{}
}
