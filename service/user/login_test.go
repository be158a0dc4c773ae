package user

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/serializer"
	"github.com/zhuyun/ZhuYun/pkg/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
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

// newSessionContext 构建携带会话中间件的请求上下文
func newSessionContext() *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/user/session", nil)
	sessions.Sessions("zhuyun-session", memstore.NewStore([]byte("secret")))(c)
	return c
}

func expectUserByEmail(status int, password string) {
	stored := model.User{}
	stored.SetPassword(password)
	userRows := sqlmock.NewRows([]string{"id", "deleted_at", "email", "password", "status", "options", "group_id"}).
		AddRow(1, nil, "admin@zhuyun.org", stored.Password, status, "{}", 1)
	mock.ExpectQuery("^SELECT(.+)users(.+)").WillReturnRows(userRows)
	groupRows := sqlmock.NewRows([]string{"id", "name", "share_enabled"}).
		AddRow(1, "管理员", true)
	mock.ExpectQuery("^SELECT(.+)groups(.+)").WillReturnRows(groupRows)
}

func TestUserLoginService_Login(t *testing.T) {
	asserts := assert.New(t)

	// 登录成功
	{
		expectUserByEmail(model.Active, "zhuyun123")
		service := UserLoginService{UserName: "admin@zhuyun.org", Password: "zhuyun123"}
		c := newSessionContext()
		res := service.Login(c)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(0, res.Code)
		asserts.EqualValues(uint(1), util.GetSession(c, "user_id"))
	}

	// 密码错误
	{
		expectUserByEmail(model.Active, "zhuyun123")
		service := UserLoginService{UserName: "admin@zhuyun.org", Password: "wrong"}
		res := service.Login(newSessionContext())
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(serializer.CodeCredentialInvalid, res.Code)
	}

	// 用户不存在，提示与密码错误一致
	{
		mock.ExpectQuery("^SELECT(.+)users(.+)").WillReturnRows(sqlmock.NewRows([]string{"id"}))
		service := UserLoginService{UserName: "nobody@zhuyun.org", Password: "zhuyun123"}
		res := service.Login(newSessionContext())
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(serializer.CodeCredentialInvalid, res.Code)
	}

	// 账号被封禁
	{
		expectUserByEmail(model.Baned, "zhuyun123")
		service := UserLoginService{UserName: "admin@zhuyun.org", Password: "zhuyun123"}
		res := service.Login(newSessionContext())
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(serializer.CodeNoPermissionErr, res.Code)
	}
}

func TestUserLogoutService_Logout(t *testing.T) {
	asserts := assert.New(t)

	c := newSessionContext()
	util.SetSession(c, "user_id", uint(1))
	service := UserLogoutService{}
	res := service.Logout(c)
	asserts.Equal(0, res.Code)
	asserts.Nil(util.GetSession(c, "user_id"))
}
