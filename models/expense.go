package model

import (
	"time"

	"github.com/jinzhu/gorm"
)

const (
	// ExpenseTypeExpense 支出
	ExpenseTypeExpense = "expense"
	// ExpenseTypeIncome 收入
	ExpenseTypeIncome = "income"
)

// Expense 收支记录模型，Type 区分支出与收入
type Expense struct {
	gorm.Model
	ProjectID uint   `gorm:"index:expense_project_id"`
	Type      string `gorm:"size:16;index:expense_type"`
	Category  string `gorm:"size:50"` // 费用类别，如人工、主材
	Amount    int64  // 金额，单位为分
	Note      string `gorm:"size:65535"`
	SpentAt   *time.Time
}

// Create 创建收支记录
func (expense *Expense) Create() (uint, error) {
	if err := DB.Create(expense).Error; err != nil {
		return 0, err
	}
	return expense.ID, nil
}

// GetExpensesByProjectID 获取项目的收支记录，按类型过滤
func GetExpensesByProjectID(projectID uint, expenseType string) []Expense {
	var expenses []Expense
	DB.Where("project_id = ? and type = ?", projectID, expenseType).
		Order("id asc").Find(&expenses)
	return expenses
}

// SumExpensesByProjectID 统计项目某类型收支总额
func SumExpensesByProjectID(projectID uint, expenseType string) int64 {
	var total struct {
		Total int64
	}
	DB.Model(&Expense{}).Select("sum(amount) as total").
		Where("project_id = ? and type = ?", projectID, expenseType).
		Scan(&total)
	return total.Total
}
