package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
)

// NotificationPref holds one user's delivery preferences: the channel × type
// matrix plus channel-level toggles. Created lazily with defaults on first
// access; never auto-deleted.
type NotificationPref struct {
	ent.Schema
}

func (NotificationPref) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (NotificationPref) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique(),

		field.JSON("matrix", notify.Matrix{}).
			Comment("channel -> type -> enabled; missing cells count as enabled"),

		field.Float("sound_volume").
			Default(0.8).
			Min(0).
			Max(1),

		field.Bool("require_interaction").
			Default(false).
			Comment("Keep notifications on screen until acted on"),

		field.Bool("only_when_hidden").
			Default(true).
			Comment("Suppress browser notifications while the tab is visible"),

		field.JSON("sounds", map[string]string{}).
			Optional().
			Comment("Per-type custom sound asset key"),
	}
}

func (NotificationPref) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
