// Code generated by ent, DO NOT EDIT.

package pushsubscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldUserID, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldEndpoint, v))
}

// P256dh applies equality check predicate on the "p256dh" field. It's identical to P256dhEQ.
func P256dh(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldP256dh, v))
}

// Auth applies equality check predicate on the "auth" field. It's identical to AuthEQ.
func Auth(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldAuth, v))
}

// DeviceLabel applies equality check predicate on the "device_label" field. It's identical to DeviceLabelEQ.
func DeviceLabel(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldDeviceLabel, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldExpiresAt, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldLastUsedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldUserID, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContainsFold(FieldEndpoint, v))
}

// P256dhEQ applies the EQ predicate on the "p256dh" field.
func P256dhEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldP256dh, v))
}

// P256dhNEQ applies the NEQ predicate on the "p256dh" field.
func P256dhNEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldP256dh, v))
}

// P256dhIn applies the In predicate on the "p256dh" field.
func P256dhIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldP256dh, vs...))
}

// P256dhNotIn applies the NotIn predicate on the "p256dh" field.
func P256dhNotIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldP256dh, vs...))
}

// P256dhGT applies the GT predicate on the "p256dh" field.
func P256dhGT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldP256dh, v))
}

// P256dhGTE applies the GTE predicate on the "p256dh" field.
func P256dhGTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldP256dh, v))
}

// P256dhLT applies the LT predicate on the "p256dh" field.
func P256dhLT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldP256dh, v))
}

// P256dhLTE applies the LTE predicate on the "p256dh" field.
func P256dhLTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldP256dh, v))
}

// P256dhContains applies the Contains predicate on the "p256dh" field.
func P256dhContains(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContains(FieldP256dh, v))
}

// P256dhHasPrefix applies the HasPrefix predicate on the "p256dh" field.
func P256dhHasPrefix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasPrefix(FieldP256dh, v))
}

// P256dhHasSuffix applies the HasSuffix predicate on the "p256dh" field.
func P256dhHasSuffix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasSuffix(FieldP256dh, v))
}

// P256dhEqualFold applies the EqualFold predicate on the "p256dh" field.
func P256dhEqualFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEqualFold(FieldP256dh, v))
}

// P256dhContainsFold applies the ContainsFold predicate on the "p256dh" field.
func P256dhContainsFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContainsFold(FieldP256dh, v))
}

// AuthEQ applies the EQ predicate on the "auth" field.
func AuthEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldAuth, v))
}

// AuthNEQ applies the NEQ predicate on the "auth" field.
func AuthNEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldAuth, v))
}

// AuthIn applies the In predicate on the "auth" field.
func AuthIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldAuth, vs...))
}

// AuthNotIn applies the NotIn predicate on the "auth" field.
func AuthNotIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldAuth, vs...))
}

// AuthGT applies the GT predicate on the "auth" field.
func AuthGT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldAuth, v))
}

// AuthGTE applies the GTE predicate on the "auth" field.
func AuthGTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldAuth, v))
}

// AuthLT applies the LT predicate on the "auth" field.
func AuthLT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldAuth, v))
}

// AuthLTE applies the LTE predicate on the "auth" field.
func AuthLTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldAuth, v))
}

// AuthContains applies the Contains predicate on the "auth" field.
func AuthContains(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContains(FieldAuth, v))
}

// AuthHasPrefix applies the HasPrefix predicate on the "auth" field.
func AuthHasPrefix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasPrefix(FieldAuth, v))
}

// AuthHasSuffix applies the HasSuffix predicate on the "auth" field.
func AuthHasSuffix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasSuffix(FieldAuth, v))
}

// AuthEqualFold applies the EqualFold predicate on the "auth" field.
func AuthEqualFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEqualFold(FieldAuth, v))
}

// AuthContainsFold applies the ContainsFold predicate on the "auth" field.
func AuthContainsFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContainsFold(FieldAuth, v))
}

// DeviceLabelEQ applies the EQ predicate on the "device_label" field.
func DeviceLabelEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldDeviceLabel, v))
}

// DeviceLabelNEQ applies the NEQ predicate on the "device_label" field.
func DeviceLabelNEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldDeviceLabel, v))
}

// DeviceLabelIn applies the In predicate on the "device_label" field.
func DeviceLabelIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldDeviceLabel, vs...))
}

// DeviceLabelNotIn applies the NotIn predicate on the "device_label" field.
func DeviceLabelNotIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldDeviceLabel, vs...))
}

// DeviceLabelGT applies the GT predicate on the "device_label" field.
func DeviceLabelGT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldDeviceLabel, v))
}

// DeviceLabelGTE applies the GTE predicate on the "device_label" field.
func DeviceLabelGTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldDeviceLabel, v))
}

// DeviceLabelLT applies the LT predicate on the "device_label" field.
func DeviceLabelLT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldDeviceLabel, v))
}

// DeviceLabelLTE applies the LTE predicate on the "device_label" field.
func DeviceLabelLTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldDeviceLabel, v))
}

// DeviceLabelContains applies the Contains predicate on the "device_label" field.
func DeviceLabelContains(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContains(FieldDeviceLabel, v))
}

// DeviceLabelHasPrefix applies the HasPrefix predicate on the "device_label" field.
func DeviceLabelHasPrefix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasPrefix(FieldDeviceLabel, v))
}

// DeviceLabelHasSuffix applies the HasSuffix predicate on the "device_label" field.
func DeviceLabelHasSuffix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasSuffix(FieldDeviceLabel, v))
}

// DeviceLabelIsNil applies the IsNil predicate on the "device_label" field.
func DeviceLabelIsNil() predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIsNull(FieldDeviceLabel))
}

// DeviceLabelNotNil applies the NotNil predicate on the "device_label" field.
func DeviceLabelNotNil() predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotNull(FieldDeviceLabel))
}

// DeviceLabelEqualFold applies the EqualFold predicate on the "device_label" field.
func DeviceLabelEqualFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEqualFold(FieldDeviceLabel, v))
}

// DeviceLabelContainsFold applies the ContainsFold predicate on the "device_label" field.
func DeviceLabelContainsFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContainsFold(FieldDeviceLabel, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotNull(FieldExpiresAt))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldLastUsedAt, v))
}

// LastUsedAtIsNil applies the IsNil predicate on the "last_used_at" field.
func LastUsedAtIsNil() predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIsNull(FieldLastUsedAt))
}

// LastUsedAtNotNil applies the NotNil predicate on the "last_used_at" field.
func LastUsedAtNotNil() predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotNull(FieldLastUsedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PushSubscription) predicate.PushSubscription {
	return predicate.PushSubscription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PushSubscription) predicate.PushSubscription {
	return predicate.PushSubscription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PushSubscription) predicate.PushSubscription {
	return predicate.PushSubscription(sql.NotPredicates(p))
}
