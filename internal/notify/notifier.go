package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// AuditEvent mirrors the identifying fields of a stored audit row. The
// before/after snapshots stay in the database; a subscriber that needs
// them fetches the row itself.
type AuditEvent struct {
	ProjectID   *uint     `json:"project_id,omitempty"`
	ActorUserID *uint     `json:"actor_user_id,omitempty"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    *uint     `json:"entity_id,omitempty"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier publishes audit events to interested external consumers.
type Notifier interface {
	AuditRecorded(ctx context.Context, e AuditEvent) error
}

// NoopNotifier is used when no event channel is configured.
type NoopNotifier struct{}

func (NoopNotifier) AuditRecorded(context.Context, AuditEvent) error { return nil }

// RedisNotifier publishes events to a Redis pub/sub channel.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func (n *RedisNotifier) AuditRecorded(ctx context.Context, e AuditEvent) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, n.channel, data).Err()
}

var _ Notifier = NoopNotifier{}
var _ Notifier = (*RedisNotifier)(nil)
