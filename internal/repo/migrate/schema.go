// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"lead", "appointment", "vehicle", "communication", "system"}},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "urgent"}, Default: "normal"},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "link", Type: field.TypeString, Nullable: true, Size: 1024},
		{Name: "entity_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivered_email", Type: field.TypeBool, Default: false},
		{Name: "delivered_sms", Type: field.TypeBool, Default: false},
		{Name: "delivered_browser", Type: field.TypeBool, Default: false},
		{Name: "delivered_push", Type: field.TypeBool, Default: false},
		{Name: "delivered_sound", Type: field.TypeBool, Default: false},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[10], NotificationsColumns[1]},
			},
			{
				Name:    "notification_expires_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[17]},
			},
		},
	}
	// NotificationPrefsColumns holds the columns for the "notification_prefs" table.
	NotificationPrefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "matrix", Type: field.TypeJSON},
		{Name: "sound_volume", Type: field.TypeFloat64, Default: 0.8},
		{Name: "require_interaction", Type: field.TypeBool, Default: false},
		{Name: "only_when_hidden", Type: field.TypeBool, Default: true},
		{Name: "sounds", Type: field.TypeJSON, Nullable: true},
	}
	// NotificationPrefsTable holds the schema information for the "notification_prefs" table.
	NotificationPrefsTable = &schema.Table{
		Name:       "notification_prefs",
		Columns:    NotificationPrefsColumns,
		PrimaryKey: []*schema.Column{NotificationPrefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationpref_user_id",
				Unique:  true,
				Columns: []*schema.Column{NotificationPrefsColumns[3]},
			},
		},
	}
	// PushSubscriptionsColumns holds the columns for the "push_subscriptions" table.
	PushSubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "endpoint", Type: field.TypeString, Size: 1024},
		{Name: "p256dh", Type: field.TypeString, Size: 255},
		{Name: "auth", Type: field.TypeString, Size: 255},
		{Name: "device_label", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
	}
	// PushSubscriptionsTable holds the schema information for the "push_subscriptions" table.
	PushSubscriptionsTable = &schema.Table{
		Name:       "push_subscriptions",
		Columns:    PushSubscriptionsColumns,
		PrimaryKey: []*schema.Column{PushSubscriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pushsubscription_user_id_endpoint",
				Unique:  true,
				Columns: []*schema.Column{PushSubscriptionsColumns[2], PushSubscriptionsColumns[3]},
			},
			{
				Name:    "pushsubscription_user_id",
				Unique:  false,
				Columns: []*schema.Column{PushSubscriptionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		NotificationsTable,
		NotificationPrefsTable,
		PushSubscriptionsTable,
	}
)

func init() {
}
