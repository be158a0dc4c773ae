package project

import (
	"context"
	"fmt"
	"path"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/hashid"
	"github.com/zhuyun/ZhuYun/pkg/serializer"
	"github.com/zhuyun/ZhuYun/pkg/storage"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// PhaseCreateService 创建施工阶段服务
type PhaseCreateService struct {
	Name      string `json:"name" binding:"required,max=100"`
	Note      string `json:"note" binding:"max=65535"`
	Sort      int    `json:"sort"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ExpenseCreateService 创建收支记录服务
type ExpenseCreateService struct {
	Type     string `json:"type" binding:"required,eq=expense|eq=income"`
	Category string `json:"category" binding:"required,max=50"`
	Amount   int64  `json:"amount" binding:"required,min=1"`
	Note     string `json:"note" binding:"max=65535"`
	SpentAt  string `json:"spent_at"`
}

// MaterialCreateService 创建建材记录服务
type MaterialCreateService struct {
	Name      string `json:"name" binding:"required,max=100"`
	Spec      string `json:"spec" binding:"max=100"`
	Brand     string `json:"brand" binding:"max=100"`
	Unit      string `json:"unit" binding:"max=20"`
	Quantity  int    `json:"quantity" binding:"min=0"`
	UnitPrice int64  `json:"unit_price" binding:"min=0"`
	Supplier  string `json:"supplier" binding:"max=100"`
}

// MemberCreateService 创建团队成员服务
type MemberCreateService struct {
	Name      string `json:"name" binding:"required,max=50"`
	Role      string `json:"role" binding:"required,max=50"`
	Phone     string `json:"phone" binding:"max=20"`
	DailyWage int64  `json:"daily_wage" binding:"min=0"`
}

// ListPhases 列出项目施工阶段
func ListPhases(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	phases := lo.Map(model.GetPhasesByProjectID(project.ID),
		func(phase model.Phase, _ int) map[string]interface{} {
			return map[string]interface{}{
				"id":         hashid.HashID(phase.ID, hashid.PhaseID),
				"name":       phase.Name,
				"note":       phase.Note,
				"status":     phase.Status,
				"progress":   phase.Progress,
				"sort":       phase.Sort,
				"start_date": phase.StartDate,
				"end_date":   phase.EndDate,
			}
		})
	return serializer.Response{Data: map[string]interface{}{
		"items": phases,
		"total": len(phases),
	}}
}

// CreatePhase 创建施工阶段
func (service *PhaseCreateService) Create(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	phase := model.Phase{
		ProjectID: project.ID,
		Name:      service.Name,
		Note:      service.Note,
		Status:    model.PhasePending,
		Sort:      service.Sort,
		StartDate: parseDate(service.StartDate),
		EndDate:   parseDate(service.EndDate),
	}
	if _, err := phase.Create(); err != nil {
		return serializer.DBErr("无法创建施工阶段", err)
	}

	return serializer.Response{Data: map[string]string{
		"id": hashid.HashID(phase.ID, hashid.PhaseID),
	}}
}

// ListExpenses 列出项目收支记录，type 参数区分支出与收入
func ListExpenses(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	expenseType := c.DefaultQuery("type", model.ExpenseTypeExpense)
	if expenseType != model.ExpenseTypeExpense && expenseType != model.ExpenseTypeIncome {
		return serializer.ParamErr("收支类型不合法", nil)
	}

	expenses := lo.Map(model.GetExpensesByProjectID(project.ID, expenseType),
		func(expense model.Expense, _ int) map[string]interface{} {
			return map[string]interface{}{
				"id":       hashid.HashID(expense.ID, hashid.ExpenseID),
				"type":     expense.Type,
				"category": expense.Category,
				"amount":   expense.Amount,
				"note":     expense.Note,
				"spent_at": expense.SpentAt,
			}
		})
	return serializer.Response{Data: map[string]interface{}{
		"items": expenses,
		"total": len(expenses),
	}}
}

// CreateExpense 创建收支记录
func (service *ExpenseCreateService) Create(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	expense := model.Expense{
		ProjectID: project.ID,
		Type:      service.Type,
		Category:  service.Category,
		Amount:    service.Amount,
		Note:      service.Note,
		SpentAt:   parseDate(service.SpentAt),
	}
	if _, err := expense.Create(); err != nil {
		return serializer.DBErr("无法创建收支记录", err)
	}

	return serializer.Response{Data: map[string]string{
		"id": hashid.HashID(expense.ID, hashid.ExpenseID),
	}}
}

// ListMaterials 列出项目建材
func ListMaterials(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	materials := lo.Map(model.GetMaterialsByProjectID(project.ID),
		func(material model.Material, _ int) map[string]interface{} {
			return map[string]interface{}{
				"id":         hashid.HashID(material.ID, hashid.MaterialID),
				"name":       material.Name,
				"spec":       material.Spec,
				"brand":      material.Brand,
				"unit":       material.Unit,
				"quantity":   material.Quantity,
				"unit_price": material.UnitPrice,
				"supplier":   material.Supplier,
			}
		})
	return serializer.Response{Data: map[string]interface{}{
		"items": materials,
		"total": len(materials),
	}}
}

// CreateMaterial 创建建材记录
func (service *MaterialCreateService) Create(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	material := model.Material{
		ProjectID: project.ID,
		Name:      service.Name,
		Spec:      service.Spec,
		Brand:     service.Brand,
		Unit:      service.Unit,
		Quantity:  service.Quantity,
		UnitPrice: service.UnitPrice,
		Supplier:  service.Supplier,
	}
	if _, err := material.Create(); err != nil {
		return serializer.DBErr("无法创建建材记录", err)
	}

	return serializer.Response{Data: map[string]string{
		"id": hashid.HashID(material.ID, hashid.MaterialID),
	}}
}

// ListMembers 列出项目团队成员，属主视角含联系方式
func ListMembers(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}
	return serializer.BuildMemberList(model.GetMembersByProjectID(project.ID))
}

// CreateMember 创建团队成员
func (service *MemberCreateService) Create(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	member := model.TeamMember{
		ProjectID: project.ID,
		Name:      service.Name,
		Role:      service.Role,
		Phone:     service.Phone,
		DailyWage: service.DailyWage,
	}
	if _, err := member.Create(); err != nil {
		return serializer.DBErr("无法创建团队成员", err)
	}

	return serializer.Response{Data: map[string]string{
		"id": hashid.HashID(member.ID, hashid.TeamMemberID),
	}}
}

// PhotoUploadService 上传施工照片服务
type PhotoUploadService struct {
	PhaseID string `form:"phase_id" binding:"required"`
	Note    string `form:"note" binding:"max=255"`
}

// ListPhotos 列出项目施工照片，可按阶段过滤
func ListPhotos(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	var photos []model.PhasePhoto
	if key := c.Query("phase"); key != "" {
		phase, errRes := projectPhase(key, project)
		if errRes != nil {
			return *errRes
		}
		photos = model.GetPhotosByPhaseID(phase.ID)
	} else {
		photos = model.GetPhotosByProjectID(project.ID)
	}

	items := lo.Map(photos,
		func(photo model.PhasePhoto, _ int) map[string]interface{} {
			return map[string]interface{}{
				"id":       hashid.HashID(photo.ID, hashid.PhotoID),
				"phase_id": hashid.HashID(photo.PhaseID, hashid.PhaseID),
				"name":     photo.Name,
				"note":     photo.Note,
				"size":     photo.Size,
			}
		})
	return serializer.Response{Data: map[string]interface{}{
		"items": items,
		"total": len(items),
	}}
}

// Upload 上传施工照片
func (service *PhotoUploadService) Upload(c *gin.Context, user *model.User) serializer.Response {
	project, errRes := ownedProject(c, user)
	if errRes != nil {
		return *errRes
	}

	phase, errRes := projectPhase(service.PhaseID, project)
	if errRes != nil {
		return *errRes
	}

	file, err := c.FormFile("file")
	if err != nil {
		return serializer.ParamErr("未上传任何文件", err)
	}

	// 照片大小限制
	maxSize := model.GetIntSetting("max_photo_size", 20<<20)
	if file.Size > int64(maxSize) {
		return serializer.ParamErr("文件大小超出限制", nil)
	}

	src, err := file.Open()
	if err != nil {
		return serializer.Err(serializer.CodeIOFailed, "无法读取上传文件", err)
	}
	defer src.Close()

	// 物理路径按项目分目录，文件名用随机标识防止冲突
	sourceName := fmt.Sprintf("photos/%d/%s%s",
		project.ID, uuid.New().String(), path.Ext(file.Filename))
	if err := storage.Instance.Put(c.Request.Context(), src, sourceName, uint64(file.Size)); err != nil {
		return serializer.Err(serializer.CodeIOFailed, "无法保存文件", err)
	}

	photo := model.PhasePhoto{
		ProjectID:  project.ID,
		PhaseID:    phase.ID,
		Name:       file.Filename,
		SourceName: sourceName,
		Size:       uint64(file.Size),
		Note:       service.Note,
	}
	if _, err := photo.Create(); err != nil {
		// 记录创建失败时回收物理文件
		if delErr := storage.Instance.Delete(context.Background(), sourceName); delErr != nil {
			util.Log().Warning("无法清理照片物理文件 %s, %s", sourceName, delErr)
		}
		return serializer.DBErr("无法保存照片记录", err)
	}

	return serializer.Response{Data: map[string]string{
		"id": hashid.HashID(photo.ID, hashid.PhotoID),
	}}
}

// projectPhase 解析阶段标识并校验归属
func projectPhase(key string, project *model.Project) (*model.Phase, *serializer.Response) {
	id, err := hashid.DecodeHashID(key, hashid.PhaseID)
	if err != nil {
		res := serializer.Err(serializer.CodeNotFound, "施工阶段不存在", nil)
		return nil, &res
	}

	phase, err := model.GetPhaseByIDAndProject(id, project.ID)
	if err != nil {
		res := serializer.Err(serializer.CodeNotFound, "施工阶段不存在", nil)
		return nil, &res
	}
	return &phase, nil
}
