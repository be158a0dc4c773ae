package share

import (
	"errors"
	"testing"

	model "github.com/zhuyun/ZhuYun/models"
	"github.com/zhuyun/ZhuYun/pkg/cache"
	"github.com/zhuyun/ZhuYun/pkg/serializer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCommentListService_List(t *testing.T) {
	asserts := assert.New(t)
	share := newPublicShare(model.ShareOption{AllowComments: true})

	expectAnonymousGroup()
	c := newShareContext(share)

	mock.ExpectQuery("SELECT(.+)").
		WithArgs(share.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_name", "content"}).
			AddRow(1, "王师傅", "第一条").
			AddRow(2, "李工", "第二条"))

	service := CommentListService{}
	res := service.List(c)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.Equal(0, res.Code)

	data := res.Data.(map[string]interface{})
	asserts.Equal(2, data["total"])
	items := data["items"].([]serializer.Comment)
	asserts.Equal("第一条", items[0].Content)
	asserts.Equal("第二条", items[1].Content)
}

func TestCommentListService_ListDisabled(t *testing.T) {
	asserts := assert.New(t)

	// 留言关闭后不查询也不返回既有留言
	share := newPublicShare(model.ShareOption{AllowComments: false})
	expectAnonymousGroup()
	c := newShareContext(share)

	service := CommentListService{}
	res := service.List(c)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.Equal(serializer.CodeShareCommentsDisabled, res.Code)
	asserts.Nil(res.Data)
}

func TestCommentCreateService_Create(t *testing.T) {
	asserts := assert.New(t)
	cache.Store = cache.NewMemoStore()
	// 关闭通知邮件，避免测试中触发额外查询
	_ = cache.Set("setting_share_comment_notify", "0", 0)

	// 留言成功
	{
		share := newPublicShare(model.ShareOption{AllowComments: true})
		expectAnonymousGroup()
		c := newShareContext(share)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		service := CommentCreateService{AuthorName: "业主", Content: "地砖颜色不错"}
		res := service.Create(c)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(0, res.Code)

		comment := res.Data.(serializer.Comment)
		asserts.Equal("业主", comment.AuthorName)
		asserts.NotEmpty(comment.ID)
	}

	// 未开启留言时拒绝写入
	{
		share := newPublicShare(model.ShareOption{AllowComments: false})
		expectAnonymousGroup()
		c := newShareContext(share)

		service := CommentCreateService{AuthorName: "业主", Content: "test"}
		res := service.Create(c)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(serializer.CodeShareCommentsDisabled, res.Code)
	}

	// 空白内容
	{
		share := newPublicShare(model.ShareOption{AllowComments: true})
		expectAnonymousGroup()
		c := newShareContext(share)

		service := CommentCreateService{AuthorName: "  ", Content: "\t\n"}
		res := service.Create(c)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(serializer.CodeParamErr, res.Code)
	}

	// 数据库写入失败
	{
		share := newPublicShare(model.ShareOption{AllowComments: true})
		expectAnonymousGroup()
		c := newShareContext(share)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnError(errors.New("error"))
		mock.ExpectRollback()

		service := CommentCreateService{AuthorName: "业主", Content: "test"}
		res := service.Create(c)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Equal(serializer.CodeDBError, res.Code)
	}
}
