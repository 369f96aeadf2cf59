package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/carlosryandeveloper/AgroTrilha/internal/audit"
	"github.com/carlosryandeveloper/AgroTrilha/internal/model"
	"gorm.io/gorm"
)

type ProjectService struct {
	db       *gorm.DB
	recorder *audit.Recorder
}

func NewProjectService(db *gorm.DB, recorder *audit.Recorder) *ProjectService {
	return &ProjectService{db: db, recorder: recorder}
}

func (s *ProjectService) getProject(id uint) (*model.Project, error) {
	var project model.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40402:project not found")
		}
		return nil, err
	}
	return &project, nil
}

// CreateFromTemplate instantiates a project and copies every activity
// of the template into a checklist item. A template without activities
// yields an empty checklist.
func (s *ProjectService) CreateFromTemplate(templateID uint, clientName string, actorUserID *uint) (*model.Project, int, error) {
	var template model.Template
	if err := s.db.First(&template, templateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("40403:template not found")
		}
		return nil, 0, err
	}

	project := &model.Project{
		TemplateID:      templateID,
		ClientName:      clientName,
		Status:          "active",
		CreatedByUserID: actorUserID,
		UpdatedByUserID: actorUserID,
	}

	var itemCount int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		var phaseIDs []uint
		if err := tx.Model(&model.Phase{}).Where("template_id = ?", templateID).Pluck("id", &phaseIDs).Error; err != nil {
			return err
		}

		var activities []model.Activity
		if len(phaseIDs) > 0 {
			if err := tx.Where("phase_id IN ?", phaseIDs).Find(&activities).Error; err != nil {
				return err
			}
		}

		for _, a := range activities {
			activityID := a.ID
			item := &model.ChecklistItem{
				ProjectID:       project.ID,
				ActivityID:      &activityID,
				Title:           a.Name,
				Status:          "todo",
				UpdatedByUserID: actorUserID,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		itemCount = len(activities)

		return s.recorder.Record(tx, audit.Entry{
			ProjectID:   &project.ID,
			ActorUserID: actorUserID,
			Action:      "project.create",
			EntityType:  "Project",
			EntityID:    &project.ID,
			After:       map[string]interface{}{"project": project, "checklist_items": itemCount},
			Note:        "project created, checklist generated",
		})
	})
	if err != nil {
		return nil, 0, err
	}
	return project, itemCount, nil
}

func (s *ProjectService) List() ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) GetChecklist(projectID uint) (*model.Project, []model.ChecklistItem, error) {
	project, err := s.getProject(projectID)
	if err != nil {
		return nil, nil, err
	}
	var items []model.ChecklistItem
	if err := s.db.Where("project_id = ?", projectID).Find(&items).Error; err != nil {
		return nil, nil, err
	}
	return project, items, nil
}

// ChecklistItemUpdate distinguishes fields absent from the request
// (nil) from fields explicitly set to the empty string.
type ChecklistItemUpdate struct {
	Status   *string `json:"status"`
	Assignee *string `json:"assignee"`
	Notes    *string `json:"notes"`
}

func (s *ProjectService) UpdateChecklistItem(projectID, itemID uint, upd ChecklistItemUpdate, actorUserID *uint) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	if err := s.db.Where("id = ? AND project_id = ?", itemID, projectID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40405:checklist item not found")
		}
		return nil, err
	}
	before := item

	updates := map[string]interface{}{"updated_by_user_id": actorUserID}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}
	if upd.Assignee != nil {
		updates["assignee"] = *upd.Assignee
	}
	if upd.Notes != nil {
		updates["notes"] = *upd.Notes
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.First(&item, item.ID).Error; err != nil {
			return err
		}
		// The parent project is touched as well, when it still exists.
		if err := tx.Model(&model.Project{}).Where("id = ?", projectID).
			Update("updated_by_user_id", actorUserID).Error; err != nil {
			return err
		}
		return s.recorder.Record(tx, audit.Entry{
			ProjectID:   &projectID,
			ActorUserID: actorUserID,
			Action:      "checklist.update",
			EntityType:  "ChecklistItem",
			EntityID:    &item.ID,
			Before:      before,
			After:       item,
			Note:        "checklist item updated",
		})
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ProjectService) AddMember(projectID, userID uint, role string, actorUserID *uint) error {
	if _, err := s.getProject(projectID); err != nil {
		return err
	}
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("40401:user not found")
		}
		return err
	}

	if role == "" {
		role = "member"
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		member := &model.ProjectMember{ProjectID: projectID, UserID: userID, Role: role}
		if err := tx.Create(member).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("40902:user is already a member of this project")
			}
			return err
		}
		if err := tx.Model(&model.Project{}).Where("id = ?", projectID).
			Update("updated_by_user_id", actorUserID).Error; err != nil {
			return err
		}
		return s.recorder.Record(tx, audit.Entry{
			ProjectID:   &projectID,
			ActorUserID: actorUserID,
			Action:      "project.member.add",
			EntityType:  "ProjectMember",
			After:       map[string]interface{}{"project_id": projectID, "user_id": userID, "role": role},
			Note:        "member added to project",
		})
	})
}

// MemberView joins a membership row with the user's display fields.
// Name and email are nil when the user row is gone; membership rows
// carry no cascade.
type MemberView struct {
	UserID   uint      `json:"user_id"`
	Name     *string   `json:"name"`
	Email    *string   `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

func (s *ProjectService) ListMembers(projectID uint) ([]MemberView, error) {
	if _, err := s.getProject(projectID); err != nil {
		return nil, err
	}

	var members []model.ProjectMember
	if err := s.db.Preload("User").Where("project_id = ?", projectID).Find(&members).Error; err != nil {
		return nil, err
	}

	views := make([]MemberView, 0, len(members))
	for _, m := range members {
		view := MemberView{UserID: m.UserID, Role: m.Role, JoinedAt: m.JoinedAt}
		if m.User != nil {
			view.Name = &m.User.Name
			view.Email = &m.User.Email
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ProjectService) ListAudit(projectID uint) ([]model.AuditLog, error) {
	if _, err := s.getProject(projectID); err != nil {
		return nil, err
	}
	var logs []model.AuditLog
	if err := s.db.Where("project_id = ?", projectID).Order("created_at desc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
