package entities

import "time"

// User is an account created on first identity provider login
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"dateCreated"`
}

func (User) TableName() string {
	return "users"
}

// SuperUser grants application-wide administration to a user
type SuperUser struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex" json:"-"`
	User        *User     `gorm:"foreignKey:UserID" json:"user"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"dateCreated"`
}

func (SuperUser) TableName() string {
	return "super_users"
}
