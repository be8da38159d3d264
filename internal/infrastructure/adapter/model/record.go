package model

import (
	"time"
)

// Table names of the two record kinds
const (
	IncomeTable  = "incomes"
	ExpenseTable = "expenses"
)

// Record holds the columns shared by incomes and expenses.
// Queries pick the table explicitly, so Record itself has no table.
type Record struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Category  string    `gorm:"not null;size:100"`
	Amount    int64     `gorm:"not null"` // cents
	Date      time.Time `gorm:"not null"`
	UserID    *uint64   // NULL for unowned records
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Income is the migration model of the incomes table
type Income struct {
	Record `gorm:"embedded"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for Income
func (Income) TableName() string {
	return IncomeTable
}

// Expense is the migration model of the expenses table
type Expense struct {
	Record `gorm:"embedded"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return ExpenseTable
}
