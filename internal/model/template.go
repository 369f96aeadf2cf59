package model

import "time"

// Template is a reusable implementation plan: an ordered set of phases,
// each holding the activities carried out at the client site.
type Template struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(128);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Template) TableName() string { return "templates" }

// Phase groups activities inside a template. The sort_order column is
// named to avoid the reserved word; the API field stays "order".
type Phase struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TemplateID uint   `gorm:"not null;index:idx_phases_template_id" json:"template_id"`
	Name       string `gorm:"type:varchar(128);not null" json:"name"`
	Order      int    `gorm:"column:sort_order;default:0" json:"order"`
}

func (Phase) TableName() string { return "phases" }

type Activity struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	PhaseID          uint   `gorm:"not null;index:idx_phase_id" json:"phase_id"`
	Name             string `gorm:"type:varchar(128);not null" json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	DefinitionOfDone string `gorm:"type:text" json:"definition_of_done"`
}

func (Activity) TableName() string { return "activities" }

type Requirement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(256);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func (Requirement) TableName() string { return "requirements" }

type Decision struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(256);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Rationale   string    `gorm:"type:text" json:"rationale"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Decision) TableName() string { return "decisions" }

// ActivityRequirement links a requirement to the activity it constrains.
type ActivityRequirement struct {
	ActivityID    uint `gorm:"primaryKey;autoIncrement:false" json:"activity_id"`
	RequirementID uint `gorm:"primaryKey;autoIncrement:false" json:"requirement_id"`
}

func (ActivityRequirement) TableName() string { return "activity_requirements" }

// ActivityDecision links a recorded decision to an activity.
type ActivityDecision struct {
	ActivityID uint `gorm:"primaryKey;autoIncrement:false" json:"activity_id"`
	DecisionID uint `gorm:"primaryKey;autoIncrement:false" json:"decision_id"`
}

func (ActivityDecision) TableName() string { return "activity_decisions" }
