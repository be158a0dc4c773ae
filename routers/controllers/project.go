package controllers

import (
	"github.com/zhuyun/ZhuYun/service/project"

	"github.com/gin-gonic/gin"
)

// ProjectCreate 创建项目
func ProjectCreate(c *gin.Context) {
	var service project.ProjectCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ProjectList 列出当前用户的项目
func ProjectList(c *gin.Context) {
	res := project.List(c, CurrentUser(c))
	c.JSON(200, res)
}

// ProjectGet 获取单个项目
func ProjectGet(c *gin.Context) {
	res := project.Get(c, CurrentUser(c))
	c.JSON(200, res)
}

// ProjectUpdate 更新项目属性
func ProjectUpdate(c *gin.Context) {
	var service project.ProjectUpdateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Update(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ProjectDelete 删除项目
func ProjectDelete(c *gin.Context) {
	res := project.Delete(c, CurrentUser(c))
	c.JSON(200, res)
}

// ProjectPhases 列出项目施工阶段
func ProjectPhases(c *gin.Context) {
	res := project.ListPhases(c, CurrentUser(c))
	c.JSON(200, res)
}

// ProjectPhaseCreate 创建施工阶段
func ProjectPhaseCreate(c *gin.Context) {
	var service project.PhaseCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ProjectExpenses 列出项目收支记录
func ProjectExpenses(c *gin.Context) {
	res := project.ListExpenses(c, CurrentUser(c))
	c.JSON(200, res)
}

// ProjectExpenseCreate 创建收支记录
func ProjectExpenseCreate(c *gin.Context) {
	var service project.ExpenseCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ProjectMaterials 列出项目建材
func ProjectMaterials(c *gin.Context) {
	res := project.ListMaterials(c, CurrentUser(c))
	c.JSON(200, res)
}

// ProjectMaterialCreate 创建建材记录
func ProjectMaterialCreate(c *gin.Context) {
	var service project.MaterialCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ProjectMembers 列出项目团队成员
func ProjectMembers(c *gin.Context) {
	res := project.ListMembers(c, CurrentUser(c))
	c.JSON(200, res)
}

// ProjectMemberCreate 创建团队成员
func ProjectMemberCreate(c *gin.Context) {
	var service project.MemberCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ProjectPhotos 列出项目施工照片
func ProjectPhotos(c *gin.Context) {
	res := project.ListPhotos(c, CurrentUser(c))
	c.JSON(200, res)
}

// ProjectPhotoUpload 上传施工照片
func ProjectPhotoUpload(c *gin.Context) {
	var service project.PhotoUploadService
	if err := c.ShouldBind(&service); err == nil {
		res := service.Upload(c, CurrentUser(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}
