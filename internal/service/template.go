package service

import (
	"errors"
	"fmt"

	"github.com/carlosryandeveloper/AgroTrilha/internal/audit"
	"github.com/carlosryandeveloper/AgroTrilha/internal/model"
	"gorm.io/gorm"
)

type TemplateService struct {
	db       *gorm.DB
	recorder *audit.Recorder
}

func NewTemplateService(db *gorm.DB, recorder *audit.Recorder) *TemplateService {
	return &TemplateService{db: db, recorder: recorder}
}

// TemplateInput is the full phase/activity tree accepted on creation.
type TemplateInput struct {
	Name        string       `json:"name" binding:"required,max=128"`
	Description string       `json:"description"`
	Phases      []PhaseInput `json:"phases"`
}

type PhaseInput struct {
	Name       string          `json:"name" binding:"required,max=128"`
	Order      int             `json:"order"`
	Activities []ActivityInput `json:"activities"`
}

type ActivityInput struct {
	Name             string `json:"name" binding:"required,max=256"`
	Description      string `json:"description"`
	DefinitionOfDone string `json:"definition_of_done"`
}

func (s *TemplateService) Create(in TemplateInput, actorUserID *uint) (*model.Template, error) {
	template := &model.Template{Name: in.Name, Description: in.Description}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(template).Error; err != nil {
			return err
		}
		for _, ph := range in.Phases {
			phase := &model.Phase{TemplateID: template.ID, Name: ph.Name, Order: ph.Order}
			if err := tx.Create(phase).Error; err != nil {
				return err
			}
			for _, ac := range ph.Activities {
				activity := &model.Activity{
					PhaseID:          phase.ID,
					Name:             ac.Name,
					Description:      ac.Description,
					DefinitionOfDone: ac.DefinitionOfDone,
				}
				if err := tx.Create(activity).Error; err != nil {
					return err
				}
			}
		}
		return s.recorder.Record(tx, audit.Entry{
			ActorUserID: actorUserID,
			Action:      "template.create",
			EntityType:  "Template",
			EntityID:    &template.ID,
			After:       map[string]interface{}{"template": template, "phases_count": len(in.Phases)},
			Note:        "template created",
		})
	})
	if err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) List() ([]model.Template, error) {
	var templates []model.Template
	if err := s.db.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// TemplateDetail is a template with its full tree: phases ascending by
// their order attribute, activities in no particular order.
type TemplateDetail struct {
	model.Template
	Phases []PhaseDetail `json:"phases"`
}

type PhaseDetail struct {
	model.Phase
	Activities []model.Activity `json:"activities"`
}

func (s *TemplateService) Get(id uint) (*TemplateDetail, error) {
	var template model.Template
	if err := s.db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40403:template not found")
		}
		return nil, err
	}

	var phases []model.Phase
	if err := s.db.Where("template_id = ?", id).Order("sort_order asc").Find(&phases).Error; err != nil {
		return nil, err
	}

	detail := &TemplateDetail{Template: template, Phases: make([]PhaseDetail, 0, len(phases))}
	for _, ph := range phases {
		var activities []model.Activity
		if err := s.db.Where("phase_id = ?", ph.ID).Find(&activities).Error; err != nil {
			return nil, err
		}
		detail.Phases = append(detail.Phases, PhaseDetail{Phase: ph, Activities: activities})
	}
	return detail, nil
}

func (s *TemplateService) LinkRequirement(activityID uint, title, description string, actorUserID *uint) (uint, error) {
	var activity model.Activity
	if err := s.db.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("40404:activity not found")
		}
		return 0, err
	}

	requirement := &model.Requirement{Title: title, Description: description}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(requirement).Error; err != nil {
			return err
		}
		link := &model.ActivityRequirement{ActivityID: activity.ID, RequirementID: requirement.ID}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		return s.recorder.Record(tx, audit.Entry{
			ActorUserID: actorUserID,
			Action:      "template.requirement.link",
			EntityType:  "ActivityRequirement",
			After:       map[string]interface{}{"activity_id": activity.ID, "requirement_id": requirement.ID},
			Note:        "requirement linked to activity",
		})
	})
	if err != nil {
		return 0, err
	}
	return requirement.ID, nil
}

func (s *TemplateService) LinkDecision(activityID uint, title, description, rationale string, actorUserID *uint) (uint, error) {
	var activity model.Activity
	if err := s.db.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("40404:activity not found")
		}
		return 0, err
	}

	decision := &model.Decision{Title: title, Description: description, Rationale: rationale}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(decision).Error; err != nil {
			return err
		}
		link := &model.ActivityDecision{ActivityID: activity.ID, DecisionID: decision.ID}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		return s.recorder.Record(tx, audit.Entry{
			ActorUserID: actorUserID,
			Action:      "template.decision.link",
			EntityType:  "ActivityDecision",
			After:       map[string]interface{}{"activity_id": activity.ID, "decision_id": decision.ID},
			Note:        "decision linked to activity",
		})
	})
	if err != nil {
		return 0, err
	}
	return decision.ID, nil
}
