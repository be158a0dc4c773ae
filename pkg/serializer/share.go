package serializer

import (
	"time"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/hashid"

	"github.com/samber/lo"
)

// Share 分享信息序列化
type Share struct {
	Key           string        `json:"key"`
	Locked        bool          `json:"locked"`
	CreateDate    time.Time     `json:"create_date"`
	Views         int           `json:"views"`
	Expire        int64         `json:"expire"`
	AllowComments bool          `json:"allow_comments"`
	Creator       *shareCreator `json:"creator,omitempty"`
	Project       *ProjectView  `json:"project,omitempty"`
}

type shareCreator struct {
	Key  string `json:"key"`
	Nick string `json:"nick"`
}

// ProjectView 面向分享访客的项目视图
// 未披露的子资源字段整体缺失，而不是空数组
type ProjectView struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Status      int        `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`

	Phases    *[]phaseItem   `json:"phases,omitempty"`
	Expenses  *[]expenseItem `json:"expenses,omitempty"`
	Incomes   *[]expenseItem `json:"incomes,omitempty"`
	Materials *[]materialItem `json:"materials,omitempty"`
	Photos    *[]photoItem   `json:"photos,omitempty"`
	Members   *[]memberItem  `json:"members,omitempty"`
}

type phaseItem struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Note      string     `json:"note"`
	Status    int        `json:"status"`
	Progress  int        `json:"progress"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type expenseItem struct {
	ID       string     `json:"id"`
	Category string     `json:"category"`
	Amount   int64      `json:"amount"`
	Note     string     `json:"note"`
	SpentAt  *time.Time `json:"spent_at,omitempty"`
}

type materialItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Spec      string `json:"spec"`
	Brand     string `json:"brand"`
	Unit      string `json:"unit"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Supplier  string `json:"supplier"`
}

type photoItem struct {
	ID      string `json:"id"`
	PhaseID string `json:"phase_id"`
	Name    string `json:"name"`
	Note    string `json:"note"`
}

// 访客视图内不含成员联系方式
type memberItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// myShareItem 我的分享列表条目
type myShareItem struct {
	Key        string            `json:"key"`
	Type       string            `json:"type"`
	ProjectID  string            `json:"project_id"`
	CreateDate time.Time         `json:"create_date"`
	Views      int               `json:"views"`
	Comments   int               `json:"comments"`
	Expire     int64             `json:"expire"`
	IsActive   bool              `json:"is_active"`
	Options    model.ShareOption `json:"options"`
}

// shareExpire 剩余有效期秒数，无过期时间为-1
func shareExpire(expires *time.Time) int64 {
	if expires == nil {
		return -1
	}
	return expires.Unix() - time.Now().Unix()
}

// BuildShareLocked 构建待解锁的分享响应，不含任何项目数据
func BuildShareLocked(share *model.Share) Response {
	creator := share.GetCreator()
	return Response{
		Code: CodeSharePasswordRequired,
		Data: Share{
			Key:        share.UUID,
			Locked:     true,
			CreateDate: share.CreatedAt,
			Views:      share.Views,
			Expire:     shareExpire(share.Expires),
			Creator: &shareCreator{
				Key:  hashid.HashID(creator.ID, hashid.UserID),
				Nick: creator.Nick,
			},
		},
		Msg: "此分享需要密码",
	}
}

// BuildShareResolved 构建解锁后的分享响应
func BuildShareResolved(share *model.Share, view *ProjectView) Response {
	creator := share.GetCreator()
	return Response{
		Data: Share{
			Key:           share.UUID,
			Locked:        false,
			CreateDate:    share.CreatedAt,
			Views:         share.Views,
			Expire:        shareExpire(share.Expires),
			AllowComments: share.OptionsSerialized.AllowComments,
			Creator: &shareCreator{
				Key:  hashid.HashID(creator.ID, hashid.UserID),
				Nick: creator.Nick,
			},
			Project: view,
		},
	}
}

// BuildProjectView 按披露设置组装项目视图
// 关闭的开关对应的子资源不会被查询，也不会出现在结果中
func BuildProjectView(share *model.Share) *ProjectView {
	project := share.GetProject()
	options := share.OptionsSerialized

	view := &ProjectView{
		Name:        project.Name,
		Description: project.Description,
		Address:     project.Address,
		Status:      project.Status,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
	}

	if options.PhaseDetails {
		phases := lo.Map(model.GetPhasesByProjectID(project.ID),
			func(phase model.Phase, _ int) phaseItem {
				return phaseItem{
					ID:        hashid.HashID(phase.ID, hashid.PhaseID),
					Name:      phase.Name,
					Note:      phase.Note,
					Status:    phase.Status,
					Progress:  phase.Progress,
					StartDate: phase.StartDate,
					EndDate:   phase.EndDate,
				}
			})
		view.Phases = &phases
	}

	if options.ExpenseDetails {
		expenses := buildExpenseItems(project.ID, model.ExpenseTypeExpense)
		view.Expenses = &expenses
	}

	if options.IncomeDetails {
		incomes := buildExpenseItems(project.ID, model.ExpenseTypeIncome)
		view.Incomes = &incomes
	}

	if options.MaterialsDetails {
		materials := lo.Map(model.GetMaterialsByProjectID(project.ID),
			func(material model.Material, _ int) materialItem {
				return materialItem{
					ID:        hashid.HashID(material.ID, hashid.MaterialID),
					Name:      material.Name,
					Spec:      material.Spec,
					Brand:     material.Brand,
					Unit:      material.Unit,
					Quantity:  material.Quantity,
					UnitPrice: material.UnitPrice,
					Supplier:  material.Supplier,
				}
			})
		view.Materials = &materials
	}

	if options.PhasePhotos {
		photos := lo.Map(model.GetPhotosByProjectID(project.ID),
			func(photo model.PhasePhoto, _ int) photoItem {
				return photoItem{
					ID:      hashid.HashID(photo.ID, hashid.PhotoID),
					PhaseID: hashid.HashID(photo.PhaseID, hashid.PhaseID),
					Name:    photo.Name,
					Note:    photo.Note,
				}
			})
		view.Photos = &photos
	}

	if options.TeamMembers {
		members := lo.Map(model.GetMembersByProjectID(project.ID),
			func(member model.TeamMember, _ int) memberItem {
				return memberItem{
					ID:   hashid.HashID(member.ID, hashid.TeamMemberID),
					Name: member.Name,
					Role: member.Role,
				}
			})
		view.Members = &members
	}

	return view
}

func buildExpenseItems(projectID uint, expenseType string) []expenseItem {
	return lo.Map(model.GetExpensesByProjectID(projectID, expenseType),
		func(expense model.Expense, _ int) expenseItem {
			return expenseItem{
				ID:       hashid.HashID(expense.ID, hashid.ExpenseID),
				Category: expense.Category,
				Amount:   expense.Amount,
				Note:     expense.Note,
				SpentAt:  expense.SpentAt,
			}
		})
}

// BuildShareList 构建我的分享列表响应
func BuildShareList(shares []model.Share) Response {
	res := lo.Map(shares, func(share model.Share, _ int) myShareItem {
		return myShareItem{
			Key:        share.UUID,
			Type:       share.Type,
			ProjectID:  hashid.HashID(share.ProjectID, hashid.ProjectID),
			CreateDate: share.CreatedAt,
			Views:      share.Views,
			Comments:   model.CountCommentsByShareID(share.ID),
			Expire:     shareExpire(share.Expires),
			IsActive:   share.IsActive,
			Options:    share.OptionsSerialized,
		}
	})

	return Response{Data: map[string]interface{}{
		"items": res,
		"total": len(res),
	}}
}
