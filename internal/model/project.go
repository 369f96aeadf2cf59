package model

import "time"

// Project is one client engagement instantiated from a template.
// Status is advisory: active / paused / done.
type Project struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TemplateID      uint      `gorm:"not null;index:idx_template_id" json:"template_id"`
	ClientName      string    `gorm:"type:varchar(128);not null" json:"client_name"`
	Status          string    `gorm:"type:varchar(10);default:active" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	CreatedByUserID *uint     `gorm:"index:idx_created_by_user_id" json:"created_by_user_id"`
	UpdatedByUserID *uint     `json:"updated_by_user_id"`
}

func (Project) TableName() string { return "projects" }

// ChecklistItem is one trackable unit of work. Items generated from a
// template keep a reference to their source activity; manual items have
// none. Status is advisory: todo / doing / done / blocked.
type ChecklistItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ProjectID       uint      `gorm:"not null;index:idx_project_id" json:"project_id"`
	ActivityID      *uint     `gorm:"index:idx_activity_id" json:"activity_id"`
	Title           string    `gorm:"type:varchar(256);not null" json:"title"`
	Status          string    `gorm:"type:varchar(10);default:todo" json:"status"`
	Assignee        string    `gorm:"type:varchar(128)" json:"assignee"`
	Notes           string    `gorm:"type:text" json:"notes"`
	UpdatedAt       time.Time `json:"updated_at"`
	UpdatedByUserID *uint     `json:"updated_by_user_id"`
}

func (ChecklistItem) TableName() string { return "checklist_items" }
