package project

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/cache"
	"github.com/zhuyun/ZhuYun/pkg/hashid"
	"github.com/zhuyun/ZhuYun/pkg/serializer"
	"github.com/zhuyun/ZhuYun/pkg/storage"

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

// fakeDriver 测试用内存存储驱动
type fakeDriver struct {
	files map[string][]byte
}

func (d *fakeDriver) Put(ctx context.Context, file io.Reader, dst string, size uint64) error {
	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	d.files[dst] = content
	return nil
}

func (d *fakeDriver) Get(ctx context.Context, path string) (storage.RSCloser, error) {
	return nil, errors.New("不支持读取")
}

func (d *fakeDriver) Delete(ctx context.Context, path string) error {
	delete(d.files, path)
	return nil
}

func (d *fakeDriver) Source(ctx context.Context, path string, ttl int64) (string, error) {
	return "", errors.New("不支持外链")
}

// newProjectContext 构建携带项目路径参数的请求上下文
func newProjectContext(method, target string, body io.Reader) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, body)
	c.Params = gin.Params{{Key: "id", Value: hashid.HashID(1, hashid.ProjectID)}}
	return c
}

func TestListPhotos(t *testing.T) {
	asserts := assert.New(t)
	user := &model.User{}
	user.ID = 1

	// 列出项目全部照片
	{
		c := newProjectContext("GET", "/api/v1/projects/"+hashid.HashID(1, hashid.ProjectID)+"/photos", nil)
		mock.ExpectQuery("SELECT(.+)projects(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(1, 1))
		mock.ExpectQuery("SELECT(.+)phase_photos(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "phase_id", "name"}).
				AddRow(3, 2, "wall.jpg").
				AddRow(4, 2, "floor.jpg"))

		res := ListPhotos(c, user)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(0, res.Code)
		asserts.Equal(2, res.Data.(map[string]interface{})["total"])
	}

	// 按阶段过滤
	{
		c := newProjectContext("GET",
			"/api/v1/projects/"+hashid.HashID(1, hashid.ProjectID)+"/photos?phase="+hashid.HashID(2, hashid.PhaseID), nil)
		mock.ExpectQuery("SELECT(.+)projects(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(1, 1))
		mock.ExpectQuery("SELECT(.+)phases(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "project_id"}).AddRow(2, 1))
		mock.ExpectQuery("SELECT(.+)phase_photos(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "phase_id", "name"}).AddRow(3, 2, "wall.jpg"))

		res := ListPhotos(c, user)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(0, res.Code)
		asserts.Equal(1, res.Data.(map[string]interface{})["total"])
	}

	// 阶段不属于项目
	{
		c := newProjectContext("GET",
			"/api/v1/projects/"+hashid.HashID(1, hashid.ProjectID)+"/photos?phase="+hashid.HashID(99, hashid.PhaseID), nil)
		mock.ExpectQuery("SELECT(.+)projects(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(1, 1))
		mock.ExpectQuery("SELECT(.+)phases(.+)").WillReturnError(errors.New("error"))

		res := ListPhotos(c, user)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(serializer.CodeNotFound, res.Code)
	}
}

func TestPhotoUploadService_Upload(t *testing.T) {
	asserts := assert.New(t)
	cache.Store = cache.NewMemoStore()
	// 预置大小限制，避免测试中触发额外查询
	_ = cache.Set("setting_max_photo_size", "20971520", 0)

	driver := &fakeDriver{files: make(map[string][]byte)}
	storage.Instance = driver

	user := &model.User{}
	user.ID = 1

	// 上传成功
	{
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "wall.jpg")
		_, _ = part.Write([]byte("jpeg data"))
		writer.Close()

		c := newProjectContext("POST",
			"/api/v1/projects/"+hashid.HashID(1, hashid.ProjectID)+"/photos", body)
		c.Request.Header.Set("Content-Type", writer.FormDataContentType())

		mock.ExpectQuery("SELECT(.+)projects(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(1, 1))
		mock.ExpectQuery("SELECT(.+)phases(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "project_id"}).AddRow(2, 1))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectCommit()

		service := PhotoUploadService{PhaseID: hashid.HashID(2, hashid.PhaseID)}
		res := service.Upload(c, user)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(0, res.Code)
		asserts.Len(driver.files, 1)
	}

	// 阶段不属于项目时不写入存储
	{
		c := newProjectContext("POST",
			"/api/v1/projects/"+hashid.HashID(1, hashid.ProjectID)+"/photos", nil)

		mock.ExpectQuery("SELECT(.+)projects(.+)").
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(1, 1))
		mock.ExpectQuery("SELECT(.+)phases(.+)").WillReturnError(errors.New("error"))

		service := PhotoUploadService{PhaseID: hashid.HashID(99, hashid.PhaseID)}
		res := service.Upload(c, user)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(serializer.CodeNotFound, res.Code)
		asserts.Len(driver.files, 1)
	}
}
