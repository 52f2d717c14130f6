package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/notification"
	"github.com/dealerdesk/dealerdesk_backend/pkg/email"
	"github.com/dealerdesk/dealerdesk_backend/pkg/sms"
	"github.com/dealerdesk/dealerdesk_backend/pkg/webpush"
)

// Recipient is the contact surface for one delivery. The caller resolves
// it from the event that produced the notification; this service stores no
// user directory of its own.
type Recipient struct {
	UserID uuid.UUID
	Email  string
	Phone  string
}

// Service fans one stored notification out across every channel the user's
// preference matrix allows. Each channel is best effort: a failed channel
// is logged and skipped, never blocking the others.
type Service interface {
	Deliver(ctx context.Context, n *repo.Notification, rcpt Recipient) error
}

type deliveryService struct {
	notifs   notification.Service
	email    *email.Client
	sms      *sms.Client
	push     *webpush.Client
	registry notify.Registry
	log      *slog.Logger

	smsTemplateID string
	appName       string
	baseURL       string
}

type Options struct {
	SMSTemplateID string
	AppName       string
	BaseURL       string
}

func New(
	notifs notification.Service,
	emailClient *email.Client,
	smsClient *sms.Client,
	pushClient *webpush.Client,
	registry notify.Registry,
	log *slog.Logger,
	opts Options,
) Service {
	if log == nil {
		log = slog.Default()
	}
	appName := opts.AppName
	if appName == "" {
		appName = notify.DefaultTitle
	}
	return &deliveryService{
		notifs:        notifs,
		email:         emailClient,
		sms:           smsClient,
		push:          pushClient,
		registry:      registry,
		log:           log,
		smsTemplateID: opts.SMSTemplateID,
		appName:       appName,
		baseURL:       opts.BaseURL,
	}
}

func (s *deliveryService) Deliver(ctx context.Context, n *repo.Notification, rcpt Recipient) error {
	if rcpt.UserID == uuid.Nil {
		return ErrNoRecipient
	}

	matrix := notify.Matrix(nil) // nil matrix allows everything
	if prefs, err := s.notifs.GetPrefs(ctx, rcpt.UserID); err != nil {
		s.log.Warn("delivery: load prefs failed, using defaults",
			"user_id", rcpt.UserID, "err", err)
	} else {
		matrix = prefs.Matrix
	}

	t := notify.Type(n.Type)
	var errs []error

	if matrix.Allows(notify.ChannelBrowser, t) {
		s.deliverBrowser(ctx, n)
	}

	if matrix.Allows(notify.ChannelSound, t) {
		// Sounds play client side when the browser envelope arrives; the
		// flag records that the preference gate let it through.
		s.markDelivered(ctx, n.ID, notify.ChannelSound)
	}

	if matrix.Allows(notify.ChannelPush, t) {
		if err := s.deliverPush(ctx, n, rcpt.UserID); err != nil {
			errs = append(errs, err)
		}
	}

	if matrix.Allows(notify.ChannelEmail, t) {
		if err := s.deliverEmail(ctx, n, rcpt.Email); err != nil {
			errs = append(errs, err)
		}
	}

	if matrix.Allows(notify.ChannelSMS, t) {
		if err := s.deliverSMS(ctx, n, rcpt.Phone); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *deliveryService) deliverBrowser(ctx context.Context, n *repo.Notification) {
	body := ""
	if n.Body != nil {
		body = *n.Body
	}
	s.registry.Broadcast(ctx, n.UserID.String(), notify.Envelope{
		Type: notify.EventDisplayed,
		Notification: notify.DisplayedNotification{
			ID:        n.ID.String(),
			Title:     n.Title,
			Body:      body,
			Timestamp: n.CreatedAt.UnixMilli(),
			Type:      string(n.Type),
		},
	})
	s.markDelivered(ctx, n.ID, notify.ChannelBrowser)
}

func (s *deliveryService) deliverPush(ctx context.Context, n *repo.Notification, userID uuid.UUID) error {
	if !s.push.IsEnabled() {
		return nil
	}

	subs, err := s.notifs.Subscriptions(ctx, userID)
	if err != nil {
		return fmt.Errorf("delivery: list subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil
	}

	raw, err := json.Marshal(BuildPayload(n))
	if err != nil {
		return fmt.Errorf("delivery: marshal payload: %w", err)
	}

	sent := 0
	for _, sub := range subs {
		err := s.push.Send(ctx, webpush.Subscription{
			Endpoint: sub.Endpoint,
			P256dh:   sub.P256dh,
			Auth:     sub.Auth,
		}, raw)
		switch {
		case errors.Is(err, webpush.ErrSubscriptionGone):
			// The push service disowned this endpoint; forget it.
			if dropErr := s.notifs.DropSubscription(ctx, sub.ID); dropErr != nil {
				s.log.Warn("delivery: drop dead subscription failed",
					"subscription_id", sub.ID, "err", dropErr)
			}
		case err != nil:
			s.log.Warn("delivery: push send failed",
				"subscription_id", sub.ID, "err", err)
		default:
			sent++
			if touchErr := s.notifs.TouchSubscription(ctx, sub.ID); touchErr != nil {
				s.log.Warn("delivery: touch subscription failed",
					"subscription_id", sub.ID, "err", touchErr)
			}
		}
	}

	if sent > 0 {
		s.markDelivered(ctx, n.ID, notify.ChannelPush)
	}
	return nil
}

func (s *deliveryService) deliverEmail(ctx context.Context, n *repo.Notification, addr string) error {
	if !s.email.IsEnabled() || addr == "" {
		return nil
	}

	body := ""
	if n.Body != nil {
		body = *n.Body
	}
	link := ""
	if n.Link != nil {
		link = *n.Link
	}

	msg := email.BuildNotificationEmail(email.NotificationEmailData{
		Email:    addr,
		Title:    n.Title,
		Body:     body,
		Link:     link,
		Type:     string(n.Type),
		Priority: string(n.Priority),
		AppName:  s.appName,
		BaseURL:  s.baseURL,
	})
	if err := s.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("delivery: email send: %w", err)
	}

	s.markDelivered(ctx, n.ID, notify.ChannelEmail)
	return nil
}

func (s *deliveryService) deliverSMS(ctx context.Context, n *repo.Notification, phone string) error {
	if !s.sms.IsEnabled() || phone == "" || s.smsTemplateID == "" {
		return nil
	}

	if err := s.sms.SendTemplate(ctx, phone, s.smsTemplateID, map[string]string{
		"TITLE": n.Title,
	}); err != nil {
		return fmt.Errorf("delivery: sms send: %w", err)
	}

	s.markDelivered(ctx, n.ID, notify.ChannelSMS)
	return nil
}

func (s *deliveryService) markDelivered(ctx context.Context, id uuid.UUID, ch notify.Channel) {
	if err := s.notifs.MarkDelivered(ctx, id, ch); err != nil {
		s.log.Warn("delivery: mark delivered failed",
			"notification_id", id, "channel", ch, "err", err)
	}
}
