package notification

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo"
	entnotif "github.com/dealerdesk/dealerdesk_backend/internal/repo/notification"
	entpref "github.com/dealerdesk/dealerdesk_backend/internal/repo/notificationpref"
	entsub "github.com/dealerdesk/dealerdesk_backend/internal/repo/pushsubscription"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID    uuid.UUID
	Type      notify.Type
	Priority  notify.Priority
	Title     string
	Body      *string
	Link      *string
	EntityID  *string
	Data      map[string]any
	ExpiresAt *time.Time
}

type UpsertPrefsRequest struct {
	Matrix             notify.Matrix
	SoundVolume        *float64
	RequireInteraction *bool
	OnlyWhenHidden     *bool
	Sounds             map[string]string
}

type SubscribeRequest struct {
	UserID      uuid.UUID
	Endpoint    string
	P256dh      string
	Auth        string
	DeviceLabel *string
	ExpiresAt   *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, notifID, userID uuid.UUID) (*repo.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, notifID, userID uuid.UUID) error
	PurgeExpired(ctx context.Context) (int, error)
	MarkDelivered(ctx context.Context, notifID uuid.UUID, ch notify.Channel) error

	GetPrefs(ctx context.Context, userID uuid.UUID) (*repo.NotificationPref, error)
	UpsertPrefs(ctx context.Context, userID uuid.UUID, req UpsertPrefsRequest) (*repo.NotificationPref, error)

	Subscribe(ctx context.Context, req SubscribeRequest) (*repo.PushSubscription, error)
	Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error
	Subscriptions(ctx context.Context, userID uuid.UUID) ([]*repo.PushSubscription, error)
	TouchSubscription(ctx context.Context, subID uuid.UUID) error
	DropSubscription(ctx context.Context, subID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db         *repo.Client
	expiryDays int
}

func New(db *repo.Client, expiryDays int) Service {
	if expiryDays <= 0 {
		expiryDays = 30
	}
	return &notificationService{db: db, expiryDays: expiryDays}
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	if !req.Type.Valid() {
		return nil, ErrInvalidType
	}
	priority := req.Priority
	if priority == "" {
		priority = notify.PriorityNormal
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(s.expiryDays) * 24 * time.Hour)
	if req.ExpiresAt != nil {
		if req.ExpiresAt.Before(now) {
			return nil, ErrInvalidExpiry
		}
		expiresAt = *req.ExpiresAt
	}

	c := s.db.Notification.Create().
		SetUserID(req.UserID).
		SetType(entnotif.Type(req.Type)).
		SetPriority(entnotif.Priority(priority)).
		SetTitle(req.Title).
		SetExpiresAt(expiresAt)

	if req.Body != nil {
		c = c.SetBody(*req.Body)
	}
	if req.Link != nil {
		c = c.SetLink(*req.Link)
	}
	if req.EntityID != nil {
		c = c.SetEntityID(*req.EntityID)
	}
	if req.Data != nil {
		c = c.SetData(req.Data)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Notification.Query().
		Where(
			entnotif.UserID(userID),
			entnotif.ExpiresAtGT(time.Now()),
		)

	if unreadOnly {
		q = q.Where(entnotif.Read(false))
	}

	notifs, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.db.Notification.Query().
		Where(
			entnotif.UserID(userID),
			entnotif.Read(false),
			entnotif.ExpiresAtGT(time.Now()),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// MarkRead is idempotent: the second call finds read=true and returns the
// row untouched, so read_at never moves once set.
func (s *notificationService) MarkRead(ctx context.Context, notifID, userID uuid.UUID) (*repo.Notification, error) {
	n, err := s.db.Notification.Query().
		Where(entnotif.ID(notifID), entnotif.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}

	if n.Read {
		return n, nil
	}

	n, err = s.db.Notification.UpdateOne(n).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	err := s.db.Notification.Update().
		Where(entnotif.UserID(userID), entnotif.Read(false)).
		SetRead(true).
		SetReadAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, notifID, userID uuid.UUID) error {
	affected, err := s.db.Notification.Delete().
		Where(entnotif.ID(notifID), entnotif.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeExpired hard-deletes everything past its expiry. Listing already
// filters expired rows out, so this only reclaims storage.
func (s *notificationService) PurgeExpired(ctx context.Context) (int, error) {
	n, err := s.db.Notification.Delete().
		Where(entnotif.ExpiresAtLTE(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkDelivered(ctx context.Context, notifID uuid.UUID, ch notify.Channel) error {
	u := s.db.Notification.UpdateOneID(notifID)
	switch ch {
	case notify.ChannelEmail:
		u = u.SetDeliveredEmail(true)
	case notify.ChannelSMS:
		u = u.SetDeliveredSms(true)
	case notify.ChannelBrowser:
		u = u.SetDeliveredBrowser(true)
	case notify.ChannelPush:
		u = u.SetDeliveredPush(true)
	case notify.ChannelSound:
		u = u.SetDeliveredSound(true)
	default:
		return fmt.Errorf("mark delivered: unknown channel %q", ch)
	}
	if err := u.Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Preferences
// ---------------------------------------------------------------------------

// GetPrefs creates the preference row lazily with defaults on first access.
func (s *notificationService) GetPrefs(ctx context.Context, userID uuid.UUID) (*repo.NotificationPref, error) {
	pref, err := s.db.NotificationPref.Query().
		Where(entpref.UserID(userID)).
		Only(ctx)
	if err == nil {
		return pref, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get notification prefs: %w", err)
	}

	pref, err = s.db.NotificationPref.Create().
		SetUserID(userID).
		SetMatrix(notify.DefaultMatrix()).
		Save(ctx)
	if err != nil {
		// Another request may have created it concurrently; the unique
		// index makes that a clean retry.
		if repo.IsConstraintError(err) {
			return s.db.NotificationPref.Query().
				Where(entpref.UserID(userID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("create default prefs: %w", err)
	}
	return pref, nil
}

func (s *notificationService) UpsertPrefs(ctx context.Context, userID uuid.UUID, req UpsertPrefsRequest) (*repo.NotificationPref, error) {
	existing, err := s.GetPrefs(ctx, userID)
	if err != nil {
		return nil, err
	}

	u := s.db.NotificationPref.UpdateOne(existing)
	if req.Matrix != nil {
		u = u.SetMatrix(req.Matrix)
	}
	if req.SoundVolume != nil {
		u = u.SetSoundVolume(*req.SoundVolume)
	}
	if req.RequireInteraction != nil {
		u = u.SetRequireInteraction(*req.RequireInteraction)
	}
	if req.OnlyWhenHidden != nil {
		u = u.SetOnlyWhenHidden(*req.OnlyWhenHidden)
	}
	if req.Sounds != nil {
		u = u.SetSounds(req.Sounds)
	}

	pref, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update notification prefs: %w", err)
	}
	return pref, nil
}

// ---------------------------------------------------------------------------
// Push subscriptions
// ---------------------------------------------------------------------------

// Subscribe upserts on the (user, endpoint) pair: re-subscribing from the
// same device refreshes its keys instead of piling up rows.
func (s *notificationService) Subscribe(ctx context.Context, req SubscribeRequest) (*repo.PushSubscription, error) {
	existing, err := s.db.PushSubscription.Query().
		Where(
			entsub.UserID(req.UserID),
			entsub.Endpoint(req.Endpoint),
		).
		Only(ctx)
	if err == nil {
		u := s.db.PushSubscription.UpdateOne(existing).
			SetP256dh(req.P256dh).
			SetAuth(req.Auth)
		if req.DeviceLabel != nil {
			u = u.SetDeviceLabel(*req.DeviceLabel)
		}
		if req.ExpiresAt != nil {
			u = u.SetExpiresAt(*req.ExpiresAt)
		}
		sub, uErr := u.Save(ctx)
		if uErr != nil {
			return nil, fmt.Errorf("refresh subscription: %w", uErr)
		}
		return sub, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("check subscription: %w", err)
	}

	c := s.db.PushSubscription.Create().
		SetUserID(req.UserID).
		SetEndpoint(req.Endpoint).
		SetP256dh(req.P256dh).
		SetAuth(req.Auth)
	if req.DeviceLabel != nil {
		c = c.SetDeviceLabel(*req.DeviceLabel)
	}
	if req.ExpiresAt != nil {
		c = c.SetExpiresAt(*req.ExpiresAt)
	}

	sub, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return sub, nil
}

func (s *notificationService) Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error {
	affected, err := s.db.PushSubscription.Delete().
		Where(
			entsub.UserID(userID),
			entsub.Endpoint(endpoint),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	if affected == 0 {
		return ErrNoSubscription
	}
	return nil
}

func (s *notificationService) Subscriptions(ctx context.Context, userID uuid.UUID) ([]*repo.PushSubscription, error) {
	subs, err := s.db.PushSubscription.Query().
		Where(entsub.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

// TouchSubscription records a successful push send.
func (s *notificationService) TouchSubscription(ctx context.Context, subID uuid.UUID) error {
	err := s.db.PushSubscription.UpdateOneID(subID).
		SetLastUsedAt(time.Now()).
		Exec(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("touch subscription: %w", err)
	}
	return nil
}

// DropSubscription removes an endpoint the push service reported as gone.
func (s *notificationService) DropSubscription(ctx context.Context, subID uuid.UUID) error {
	err := s.db.PushSubscription.DeleteOneID(subID).Exec(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("drop subscription: %w", err)
	}
	return nil
}
