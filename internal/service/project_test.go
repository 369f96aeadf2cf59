package service

import (
	"testing"
	"time"

	"github.com/carlosryandeveloper/AgroTrilha/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTemplate(t *testing.T, templates *TemplateService) *model.Template {
	t.Helper()
	created, err := templates.Create(onboardingTemplate(), nil)
	require.NoError(t, err)
	return created
}

func seedUser(t *testing.T, users *UserService, name, email string) *model.User {
	t.Helper()
	user, err := users.Create(name, email, nil)
	require.NoError(t, err)
	return user
}

func TestCreateFromTemplate_CopiesActivities(t *testing.T) {
	db, templates, projects, _ := newServices(t)
	template := seedTemplate(t, templates)

	project, itemCount, err := projects.CreateFromTemplate(template.ID, "Fazenda Boa Vista", uintPtr(5))
	require.NoError(t, err)
	assert.Equal(t, 3, itemCount)
	assert.Equal(t, "active", project.Status)
	require.NotNil(t, project.CreatedByUserID)
	assert.EqualValues(t, 5, *project.CreatedByUserID)

	var items []model.ChecklistItem
	require.NoError(t, db.Where("project_id = ?", project.ID).Find(&items).Error)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, "todo", item.Status)
		require.NotNil(t, item.ActivityID)
	}

	// Titles come from the source activities.
	titles := make(map[string]bool)
	for _, item := range items {
		titles[item.Title] = true
	}
	assert.True(t, titles["Walk the plots"])
	assert.True(t, titles["Soil sampling"])
	assert.True(t, titles["Mount sensors"])

	row := lastAudit(t, db)
	assert.Equal(t, "project.create", row.Action)
	require.NotNil(t, row.ProjectID)
	assert.EqualValues(t, project.ID, *row.ProjectID)
	assert.EqualValues(t, 3, row.After["checklist_items"])
	snapshot, ok := row.After["project"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Fazenda Boa Vista", snapshot["client_name"])
}

func TestCreateFromTemplate_EmptyTemplate(t *testing.T) {
	db, templates, projects, _ := newServices(t)
	template, err := templates.Create(TemplateInput{Name: "Empty"}, nil)
	require.NoError(t, err)

	project, itemCount, err := projects.CreateFromTemplate(template.ID, "Sitio Novo", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, itemCount)

	var count int64
	require.NoError(t, db.Model(&model.ChecklistItem{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateFromTemplate_TemplateMissing(t *testing.T) {
	_, _, projects, _ := newServices(t)

	_, _, err := projects.CreateFromTemplate(404404, "nobody", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template not found")
}

func TestListProjects_NewestFirst(t *testing.T) {
	_, templates, projects, _ := newServices(t)
	template := seedTemplate(t, templates)

	for _, client := range []string{"first", "second", "third"} {
		_, _, err := projects.CreateFromTemplate(template.ID, client, nil)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	list, err := projects.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].ClientName)
	assert.Equal(t, "second", list[1].ClientName)
	assert.Equal(t, "first", list[2].ClientName)
}

func TestUpdateChecklistItem_PartialUpdate(t *testing.T) {
	db, templates, projects, _ := newServices(t)
	template := seedTemplate(t, templates)
	project, _, err := projects.CreateFromTemplate(template.ID, "client", nil)
	require.NoError(t, err)

	var item model.ChecklistItem
	require.NoError(t, db.Where("project_id = ?", project.ID).First(&item).Error)

	_, err = projects.UpdateChecklistItem(project.ID, item.ID, ChecklistItemUpdate{
		Assignee: strPtr("maria"),
		Notes:    strPtr("bring spare cables"),
	}, nil)
	require.NoError(t, err)

	// Status-only update leaves assignee and notes alone.
	updated, err := projects.UpdateChecklistItem(project.ID, item.ID, ChecklistItemUpdate{
		Status: strPtr("doing"),
	}, uintPtr(9))
	require.NoError(t, err)
	assert.Equal(t, "doing", updated.Status)
	assert.Equal(t, "maria", updated.Assignee)
	assert.Equal(t, "bring spare cables", updated.Notes)
	require.NotNil(t, updated.UpdatedByUserID)
	assert.EqualValues(t, 9, *updated.UpdatedByUserID)

	// An explicit empty string is applied, unlike an omitted field.
	updated, err = projects.UpdateChecklistItem(project.ID, item.ID, ChecklistItemUpdate{
		Notes: strPtr(""),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", updated.Notes)
	assert.Equal(t, "maria", updated.Assignee)

	// The parent project is stamped as a side effect.
	var parent model.Project
	require.NoError(t, db.First(&parent, project.ID).Error)
	assert.True(t, parent.UpdatedAt.After(parent.CreatedAt) || parent.UpdatedAt.Equal(parent.CreatedAt))
}

func TestUpdateChecklistItem_AuditsBeforeAndAfter(t *testing.T) {
	db, templates, projects, _ := newServices(t)
	template := seedTemplate(t, templates)
	project, _, err := projects.CreateFromTemplate(template.ID, "client", nil)
	require.NoError(t, err)

	var item model.ChecklistItem
	require.NoError(t, db.Where("project_id = ?", project.ID).First(&item).Error)

	_, err = projects.UpdateChecklistItem(project.ID, item.ID, ChecklistItemUpdate{Status: strPtr("blocked")}, uintPtr(2))
	require.NoError(t, err)

	row := lastAudit(t, db)
	assert.Equal(t, "checklist.update", row.Action)
	assert.Equal(t, "ChecklistItem", row.EntityType)
	require.NotNil(t, row.Before)
	require.NotNil(t, row.After)
	assert.Equal(t, "todo", row.Before["status"])
	assert.Equal(t, "blocked", row.After["status"])
}

func TestUpdateChecklistItem_WrongProject(t *testing.T) {
	db, templates, projects, _ := newServices(t)
	template := seedTemplate(t, templates)
	first, _, err := projects.CreateFromTemplate(template.ID, "first", nil)
	require.NoError(t, err)
	second, _, err := projects.CreateFromTemplate(template.ID, "second", nil)
	require.NoError(t, err)

	var item model.ChecklistItem
	require.NoError(t, db.Where("project_id = ?", first.ID).First(&item).Error)

	_, err = projects.UpdateChecklistItem(second.ID, item.ID, ChecklistItemUpdate{Status: strPtr("done")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checklist item not found")
}

func TestAddMember_DuplicateIsConflict(t *testing.T) {
	_, templates, projects, users := newServices(t)
	template := seedTemplate(t, templates)
	project, _, err := projects.CreateFromTemplate(template.ID, "client", nil)
	require.NoError(t, err)
	user := seedUser(t, users, "Ana", "ana@example.com")

	require.NoError(t, projects.AddMember(project.ID, user.ID, "lead", nil))

	err = projects.AddMember(project.ID, user.ID, "member", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a member")

	members, err := projects.ListMembers(project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "lead", members[0].Role)
}

func TestAddMember_MissingReferences(t *testing.T) {
	_, templates, projects, users := newServices(t)
	template := seedTemplate(t, templates)
	project, _, err := projects.CreateFromTemplate(template.ID, "client", nil)
	require.NoError(t, err)
	user := seedUser(t, users, "Ana", "ana@example.com")

	err = projects.AddMember(999, user.ID, "member", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")

	err = projects.AddMember(project.ID, 999, "member", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func TestListMembers_ToleratesMissingUserRow(t *testing.T) {
	db, templates, projects, users := newServices(t)
	template := seedTemplate(t, templates)
	project, _, err := projects.CreateFromTemplate(template.ID, "client", nil)
	require.NoError(t, err)
	user := seedUser(t, users, "Ana", "ana@example.com")
	require.NoError(t, projects.AddMember(project.ID, user.ID, "", nil))

	// No delete endpoint exists, but the reference is loose on purpose.
	require.NoError(t, db.Delete(&model.User{}, user.ID).Error)

	members, err := projects.ListMembers(project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Nil(t, members[0].Name)
	assert.Nil(t, members[0].Email)
	assert.Equal(t, "member", members[0].Role)
}

func TestListAudit_NewestFirstAndScoped(t *testing.T) {
	_, templates, projects, users := newServices(t)
	template := seedTemplate(t, templates)
	project, _, err := projects.CreateFromTemplate(template.ID, "client", nil)
	require.NoError(t, err)
	user := seedUser(t, users, "Ana", "ana@example.com")

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, projects.AddMember(project.ID, user.ID, "member", nil))

	logs, err := projects.ListAudit(project.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "project.member.add", logs[0].Action)
	assert.Equal(t, "project.create", logs[1].Action)

	_, err = projects.ListAudit(77777)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")
}
