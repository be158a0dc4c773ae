package serializer

import (
	"database/sql"
	"encoding/json"
	"testing"

	model "github.com/zhuyun/ZhuYun/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
)

var mock sqlmock.Sqlmock

// TestMain 初始化数据库Mock
func TestMain(m *testing.M) {
	var db *sql.DB
	var err error
	db, mock, err = sqlmock.New()
	if err != nil {
		panic("An error was not expected when opening a stub database connection")
	}
	model.DB, _ = gorm.Open("mysql", db)
	defer db.Close()
	m.Run()
}

func newTestShare(options model.ShareOption) *model.Share {
	share := &model.Share{
		UUID:              "b5f1c2ce-3a8d-4f7e-89ab-0c1d2e3f4a5b",
		ProjectID:         1,
		UserID:            1,
		Type:              model.SharePublic,
		IsActive:          true,
		OptionsSerialized: options,
	}
	share.Project = model.Project{Name: "滨江华府 3-1202", Address: "杭州滨江"}
	share.Project.ID = 1
	share.User = model.User{Nick: "admin"}
	share.User.ID = 1
	return share
}

func TestBuildProjectView_DisclosureIsExact(t *testing.T) {
	asserts := assert.New(t)
	share := newTestShare(model.ShareOption{ExpenseDetails: true})

	// 只查询一次支出，其他子资源不触发查询
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, model.ExpenseTypeExpense).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "amount"}).
			AddRow(1, "人工", 150000))

	view := BuildProjectView(share)
	asserts.NoError(mock.ExpectationsWereMet())

	// 基础信息不受开关控制
	asserts.Equal("滨江华府 3-1202", view.Name)

	// 披露的集合存在，未披露的集合整体缺失
	asserts.NotNil(view.Expenses)
	asserts.Len(*view.Expenses, 1)
	asserts.Nil(view.Phases)
	asserts.Nil(view.Incomes)
	asserts.Nil(view.Materials)
	asserts.Nil(view.Photos)
	asserts.Nil(view.Members)
}

func TestBuildProjectView_AbsentKeysAfterSerialize(t *testing.T) {
	asserts := assert.New(t)
	share := newTestShare(model.ShareOption{ExpenseDetails: true})

	// 披露的集合即使为空也要出现为空数组
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "amount"}))

	view := BuildProjectView(share)
	asserts.NoError(mock.ExpectationsWereMet())

	raw, err := json.Marshal(view)
	asserts.NoError(err)

	var decoded map[string]interface{}
	asserts.NoError(json.Unmarshal(raw, &decoded))

	// 序列化往返后，键集合与披露设置一一对应
	asserts.Contains(decoded, "expenses")
	asserts.Equal([]interface{}{}, decoded["expenses"])
	asserts.NotContains(decoded, "phases")
	asserts.NotContains(decoded, "incomes")
	asserts.NotContains(decoded, "materials")
	asserts.NotContains(decoded, "photos")
	asserts.NotContains(decoded, "members")
}

func TestBuildShareLocked(t *testing.T) {
	asserts := assert.New(t)
	share := newTestShare(model.ShareOption{PhaseDetails: true})
	share.Type = model.SharePrivate
	share.Password = "salt:digest"

	res := BuildShareLocked(share)
	asserts.Equal(CodeSharePasswordRequired, res.Code)

	// 待解锁响应不携带任何项目数据
	data := res.Data.(Share)
	asserts.True(data.Locked)
	asserts.Nil(data.Project)
	asserts.Equal(share.UUID, data.Key)
}

func TestBuildShareResolved(t *testing.T) {
	asserts := assert.New(t)
	share := newTestShare(model.ShareOption{AllowComments: true})
	view := &ProjectView{Name: "滨江华府 3-1202"}

	res := BuildShareResolved(share, view)
	asserts.Equal(0, res.Code)

	data := res.Data.(Share)
	asserts.False(data.Locked)
	asserts.True(data.AllowComments)
	asserts.NotNil(data.Project)
	asserts.Equal("滨江华府 3-1202", data.Project.Name)
	// 无过期时间
	asserts.EqualValues(-1, data.Expire)
}
