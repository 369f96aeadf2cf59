package model

import "time"

// AuditLog is append-only: rows are never updated or deleted. Project
// and actor references carry no foreign key constraint; an audit row
// outlives whatever it points at.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   *uint     `gorm:"index:idx_audit_logs_project_id" json:"project_id"`
	ActorUserID *uint     `gorm:"index:idx_actor_user_id" json:"actor_user_id"`
	Action      string    `gorm:"type:varchar(64);not null;index:idx_action" json:"action"`
	EntityType  string    `gorm:"type:varchar(32);not null;index:idx_entity,priority:1" json:"entity_type"`
	EntityID    *uint     `gorm:"index:idx_entity,priority:2" json:"entity_id"`
	Before      JSONMap   `gorm:"type:json" json:"before"`
	After       JSONMap   `gorm:"type:json" json:"after"`
	CreatedAt   time.Time `gorm:"index:idx_created_at" json:"created_at"`
	Note        string    `gorm:"type:varchar(256)" json:"note"`
}

func (AuditLog) TableName() string { return "audit_logs" }
