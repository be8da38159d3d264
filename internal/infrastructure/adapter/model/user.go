package model

import (
	"time"
)

// User represents the database model for user accounts
type User struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	FullName     string     `gorm:"not null;size:255"`
	Email        string     `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string     `gorm:"not null;size:255"`
	Role         string     `gorm:"not null;size:20;default:user"`
	Avatar       string     `gorm:"type:text"`
	LastLoginAt  *time.Time `gorm:"index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
