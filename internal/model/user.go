package model

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	Email     string    `gorm:"type:varchar(128);not null;uniqueIndex:uk_users_email" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
