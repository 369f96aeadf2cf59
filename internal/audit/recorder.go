package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/carlosryandeveloper/AgroTrilha/internal/model"
	"github.com/carlosryandeveloper/AgroTrilha/internal/notify"
	"gorm.io/gorm"
)

// Entry describes one mutating action to be recorded.
type Entry struct {
	ProjectID   *uint
	ActorUserID *uint
	Action      string
	EntityType  string
	EntityID    *uint
	Before      interface{}
	After       interface{}
	Note        string
}

// Recorder appends immutable audit rows. Record takes the caller's
// transaction handle so the audit row commits or rolls back together
// with the mutation it describes.
type Recorder struct {
	notifier notify.Notifier
}

func NewRecorder(notifier notify.Notifier) *Recorder {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &Recorder{notifier: notifier}
}

func (r *Recorder) Record(tx *gorm.DB, e Entry) error {
	before, err := snapshot(e.Before)
	if err != nil {
		return fmt.Errorf("audit snapshot (before): %w", err)
	}
	after, err := snapshot(e.After)
	if err != nil {
		return fmt.Errorf("audit snapshot (after): %w", err)
	}

	row := &model.AuditLog{
		ProjectID:   e.ProjectID,
		ActorUserID: e.ActorUserID,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Before:      before,
		After:       after,
		Note:        e.Note,
	}
	if err := tx.Create(row).Error; err != nil {
		return err
	}

	// Fan-out is best effort; a dead broker must not fail the mutation.
	if err := r.notifier.AuditRecorded(context.Background(), notify.AuditEvent{
		ProjectID:   e.ProjectID,
		ActorUserID: e.ActorUserID,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Note:        e.Note,
		CreatedAt:   row.CreatedAt,
	}); err != nil {
		log.Printf("[audit] publish %s: %v", e.Action, err)
	}
	return nil
}

// snapshot converts an arbitrary value into a JSON column payload.
// Timestamps come out as RFC 3339 strings via the json round-trip. A
// value json cannot marshal is a programming error and aborts the
// caller's transaction.
func snapshot(v interface{}) (model.JSONMap, error) {
	if v == nil {
		return nil, nil
	}
	if m, ok := v.(model.JSONMap); ok {
		return m, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m model.JSONMap
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
