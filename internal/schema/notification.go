package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// defaultExpiry is the passive-expiry window applied when the producer
// doesn't set one explicitly.
const defaultExpiry = 30 * 24 * time.Hour

// Notification is a single alert delivered to one user across one or more
// channels.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("Owning user"),

		field.Enum("type").
			Values("lead", "appointment", "vehicle", "communication", "system"),

		field.Enum("priority").
			Values("low", "normal", "high", "urgent").
			Default("normal"),

		field.String("title").
			MaxLen(255),

		field.Text("body").
			Optional().
			Nillable(),

		field.String("link").
			MaxLen(1024).
			Optional().
			Nillable().
			Comment("Navigation target shown in clients"),

		field.String("entity_id").
			MaxLen(64).
			Optional().
			Nillable().
			Comment("Id of the lead/appointment/vehicle/communication this refers to"),

		field.JSON("data", map[string]any{}).
			Optional().
			Comment("Arbitrary structured payload"),

		field.Bool("read").
			Default(false),

		field.Time("read_at").
			Optional().
			Nillable().
			Comment("Set once on first mark-read, immutable after"),

		field.Bool("delivered_email").Default(false),
		field.Bool("delivered_sms").Default(false),
		field.Bool("delivered_browser").Default(false),
		field.Bool("delivered_push").Default(false),
		field.Bool("delivered_sound").Default(false),

		field.Time("expires_at").
			Default(func() time.Time { return time.Now().Add(defaultExpiry) }).
			Comment("Passive expiry; always >= created_at"),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read", "created_at"),
		index.Fields("expires_at"),
	}
}
