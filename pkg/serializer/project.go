package serializer

import (
	"time"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/hashid"

	"github.com/samber/lo"
)

// Project 面向项目属主的项目序列化器
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Status      int        `json:"status"`
	Budget      int64      `json:"budget"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreateDate  time.Time  `json:"create_date"`
}

// projectSummary 项目列表条目，附带收支汇总
type projectSummary struct {
	Project
	TotalExpense int64 `json:"total_expense"`
	TotalIncome  int64 `json:"total_income"`
}

// BuildProject 序列化项目
func BuildProject(project model.Project) Project {
	return Project{
		ID:          hashid.HashID(project.ID, hashid.ProjectID),
		Name:        project.Name,
		Description: project.Description,
		Address:     project.Address,
		Status:      project.Status,
		Budget:      project.Budget,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		CreateDate:  project.CreatedAt,
	}
}

// BuildProjectResponse 序列化单个项目响应
func BuildProjectResponse(project model.Project) Response {
	return Response{Data: BuildProject(project)}
}

// BuildProjectList 构建项目列表响应
func BuildProjectList(projects []model.Project) Response {
	res := lo.Map(projects, func(project model.Project, _ int) projectSummary {
		return projectSummary{
			Project:      BuildProject(project),
			TotalExpense: model.SumExpensesByProjectID(project.ID, model.ExpenseTypeExpense),
			TotalIncome:  model.SumExpensesByProjectID(project.ID, model.ExpenseTypeIncome),
		}
	})

	return Response{Data: map[string]interface{}{
		"items": res,
		"total": len(res),
	}}
}

// memberDetail 属主视角的成员条目，含联系方式
type memberDetail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	DailyWage int64  `json:"daily_wage"`
}

// BuildMemberList 构建属主视角的成员列表响应
func BuildMemberList(members []model.TeamMember) Response {
	res := lo.Map(members, func(member model.TeamMember, _ int) memberDetail {
		return memberDetail{
			ID:        hashid.HashID(member.ID, hashid.TeamMemberID),
			Name:      member.Name,
			Role:      member.Role,
			Phone:     member.Phone,
			DailyWage: member.DailyWage,
		}
	})

	return Response{Data: map[string]interface{}{
		"items": res,
		"total": len(res),
	}}
}

// documentItem 项目文档条目
type documentItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       uint64    `json:"size"`
	Type       string    `json:"type"`
	CreateDate time.Time `json:"create_date"`
}

// BuildDocumentList 构建项目文档列表响应
func BuildDocumentList(documents []model.Document) Response {
	res := lo.Map(documents, func(document model.Document, _ int) documentItem {
		return documentItem{
			ID:         hashid.HashID(document.ID, hashid.DocumentID),
			Name:       document.Name,
			Size:       document.Size,
			Type:       document.Type,
			CreateDate: document.CreatedAt,
		}
	})

	return Response{Data: map[string]interface{}{
		"items": res,
		"total": len(res),
	}}
}
