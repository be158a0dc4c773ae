package model

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProject_Create(t *testing.T) {
	asserts := assert.New(t)
	project := Project{Name: "滨江华府 3-1202", OwnerID: 1}

	// 成功
	{
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		id, err := project.Create()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.EqualValues(1, id)
	}

	// 失败
	{
		mock.ExpectBegin()
		mock.ExpectExec("INSERT(.+)").WillReturnError(errors.New("error"))
		mock.ExpectRollback()
		id, err := project.Create()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Error(err)
		asserts.EqualValues(0, id)
	}
}

func TestGetProjectByIDAndOwner(t *testing.T) {
	asserts := assert.New(t)

	// 属主匹配
	{
		mock.ExpectQuery("SELECT(.+)").
			WithArgs(1, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(1, 2))
		project, err := GetProjectByIDAndOwner(1, 2)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
		asserts.EqualValues(1, project.ID)
	}

	// 属主不匹配时不可见
	{
		mock.ExpectQuery("SELECT(.+)").
			WillReturnError(errors.New("not found"))
		_, err := GetProjectByIDAndOwner(1, 3)
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Error(err)
	}
}

func TestGetExpensesByProjectID(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, ExpenseTypeExpense).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "amount"}).
			AddRow(1, "expense", 150000).
			AddRow(2, "expense", 9900))
	expenses := GetExpensesByProjectID(1, ExpenseTypeExpense)
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.Len(expenses, 2)
	asserts.EqualValues(150000, expenses[0].Amount)
}

func TestProject_Delete(t *testing.T) {
	asserts := assert.New(t)
	project := Project{}
	project.ID = 1

	// 成功，子资源一并删除
	{
		mock.ExpectBegin()
		for i := 0; i < 6; i++ {
			mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		err := project.Delete()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.NoError(err)
	}

	// 子资源删除失败时回滚
	{
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE(.+)").WillReturnError(errors.New("error"))
		mock.ExpectRollback()
		err := project.Delete()
		asserts.NoError(mock.ExpectationsWereMet())
		asserts.Error(err)
	}
}
