package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/carlosryandeveloper/AgroTrilha/internal/audit"
	"github.com/carlosryandeveloper/AgroTrilha/internal/database"
	"github.com/carlosryandeveloper/AgroTrilha/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newServices(t *testing.T) (*gorm.DB, *TemplateService, *ProjectService, *UserService) {
	t.Helper()
	db := openTestDB(t)
	recorder := audit.NewRecorder(nil)
	return db,
		NewTemplateService(db, recorder),
		NewProjectService(db, recorder),
		NewUserService(db, recorder)
}

func lastAudit(t *testing.T, db *gorm.DB) model.AuditLog {
	t.Helper()
	var row model.AuditLog
	require.NoError(t, db.Order("id desc").First(&row).Error)
	return row
}

func auditCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.AuditLog{}).Count(&count).Error)
	return count
}

func uintPtr(v uint) *uint       { return &v }
func strPtr(s string) *string    { return &s }
