// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// NotificationPref is the predicate function for notificationpref builders.
type NotificationPref func(*sql.Selector)

// PushSubscription is the predicate function for pushsubscription builders.
type PushSubscription func(*sql.Selector)
