package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PushSubscription is one device's web push registration. A user may hold
// several, one per browser/device; the (user_id, endpoint) pair is unique.
type PushSubscription struct {
	ent.Schema
}

func (PushSubscription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PushSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),

		field.String("endpoint").
			MaxLen(1024).
			Comment("Push service URL for this device"),

		field.String("p256dh").
			MaxLen(255).
			Comment("Client ECDH public key"),

		field.String("auth").
			MaxLen(255).
			Comment("Client auth secret"),

		field.String("device_label").
			MaxLen(255).
			Optional().
			Nillable(),

		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Expiry reported by the push service, if any"),

		field.Time("last_used_at").
			Optional().
			Nillable().
			Comment("Updated on every successful push send"),
	}
}

func (PushSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "endpoint").Unique(),
		index.Fields("user_id"),
	}
}
