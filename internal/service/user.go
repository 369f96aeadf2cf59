package service

import (
	"errors"
	"fmt"

	"github.com/carlosryandeveloper/AgroTrilha/internal/audit"
	"github.com/carlosryandeveloper/AgroTrilha/internal/model"
	"gorm.io/gorm"
)

type UserService struct {
	db       *gorm.DB
	recorder *audit.Recorder
}

func NewUserService(db *gorm.DB, recorder *audit.Recorder) *UserService {
	return &UserService{db: db, recorder: recorder}
}

// Create inserts the user without a prior existence check; the unique
// email index is the single source of conflict detection.
func (s *UserService) Create(name, email string, actorUserID *uint) (*model.User, error) {
	user := &model.User{Name: name, Email: email}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("40901:a user with this email already exists")
			}
			return err
		}
		return s.recorder.Record(tx, audit.Entry{
			ActorUserID: actorUserID,
			Action:      "user.create",
			EntityType:  "User",
			EntityID:    &user.ID,
			After:       user,
			Note:        "user created",
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List() ([]model.User, error) {
	var users []model.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
