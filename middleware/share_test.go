package middleware

import (
	"database/sql"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	model "github.com/zhuyun/ZhuYun/models"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestShareAvailable(t *testing.T) {
	asserts := assert.New(t)
	rec := httptest.NewRecorder()
	testFunc := ShareAvailable()

	// 标识格式不合法，不触发数据库查询
	{
		c, _ := gin.CreateTestContext(rec)
		c.Params = []gin.Param{{Key: "id", Value: "not-a-uuid"}}
		testFunc(c)
		asserts.True(c.IsAborted())
		asserts.NoError(mock.ExpectationsWereMet())
	}

	// 未找到或已停用
	{
		c, _ := gin.CreateTestContext(rec)
		c.Params = []gin.Param{{Key: "id", Value: "b5f1c2ce-3a8d-4f7e-89ab-0c1d2e3f4a5b"}}
		mock.ExpectQuery("SELECT(.+)").WillReturnError(errors.New("not found"))
		testFunc(c)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.True(c.IsAborted())
	}

	// 已过期
	{
		c, _ := gin.CreateTestContext(rec)
		c.Params = []gin.Param{{Key: "id", Value: "b5f1c2ce-3a8d-4f7e-89ab-0c1d2e3f4a5b"}}
		expires := time.Now().Add(-time.Hour)
		mock.ExpectQuery("SELECT(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "expires", "is_active"}).
				AddRow(1, expires, true))
		testFunc(c)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.True(c.IsAborted())
	}

	// 正常
	{
		c, _ := gin.CreateTestContext(rec)
		c.Params = []gin.Param{{Key: "id", Value: "b5f1c2ce-3a8d-4f7e-89ab-0c1d2e3f4a5b"}}
		expires := time.Now().Add(time.Hour)
		mock.ExpectQuery("SELECT(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "expires", "is_active"}).
				AddRow(1, expires, true))
		testFunc(c)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.False(c.IsAborted())
		share, ok := c.Get("share")
		asserts.True(ok)
		asserts.EqualValues(1, share.(*model.Share).ID)
		_, ok = c.Get("user")
		asserts.True(ok)
	}
}

func TestShareOwner(t *testing.T) {
	asserts := assert.New(t)
	rec := httptest.NewRecorder()
	testFunc := ShareOwner()

	// 未登录
	{
		c, _ := gin.CreateTestContext(rec)
		testFunc(c)
		asserts.True(c.IsAborted())
	}

	// 非所有者
	{
		c, _ := gin.CreateTestContext(rec)
		user := &model.User{}
		user.ID = 2
		share := &model.Share{UserID: 1}
		c.Set("user", user)
		c.Set("share", share)
		testFunc(c)
		asserts.True(c.IsAborted())
	}

	// 所有者
	{
		c, _ := gin.CreateTestContext(rec)
		user := &model.User{}
		user.ID = 1
		share := &model.Share{UserID: 1}
		c.Set("user", user)
		c.Set("share", share)
		testFunc(c)
		asserts.False(c.IsAborted())
	}
}

func TestAuthRequired(t *testing.T) {
	asserts := assert.New(t)
	rec := httptest.NewRecorder()
	testFunc := AuthRequired()

	// 未登录
	{
		c, _ := gin.CreateTestContext(rec)
		testFunc(c)
		asserts.True(c.IsAborted())
	}

	// 已登录
	{
		c, _ := gin.CreateTestContext(rec)
		c.Set("user", &model.User{})
		testFunc(c)
		asserts.False(c.IsAborted())
	}
}
