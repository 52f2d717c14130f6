package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/dealerdesk/dealerdesk_backend/config"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/delivery"
	"github.com/dealerdesk/dealerdesk_backend/internal/service/notification"
	"github.com/dealerdesk/dealerdesk_backend/pkg/email"
	"github.com/dealerdesk/dealerdesk_backend/pkg/sms"
	"github.com/dealerdesk/dealerdesk_backend/pkg/webpush"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideNotificationService,
		ProvideRegistry,
		ProvideDispatcher,
		ProvideDeliveryService,
	),
)

func ProvideNotificationService(client *repo.Client, cfg *config.Config) notification.Service {
	return notification.New(client, cfg.Notify.ExpiryDays)
}

func ProvideRegistry(rdb *redis.Client) notify.Registry {
	return notify.NewRedisRegistry(rdb, slog.Default())
}

func ProvideDispatcher(registry notify.Registry) *notify.Dispatcher {
	return notify.NewDispatcher(registry, slog.Default())
}

func ProvideDeliveryService(
	notifs notification.Service,
	emailClient *email.Client,
	smsClient *sms.Client,
	pushClient *webpush.Client,
	registry notify.Registry,
	cfg *config.Config,
) delivery.Service {
	return delivery.New(notifs, emailClient, smsClient, pushClient, registry, slog.Default(), delivery.Options{
		SMSTemplateID: cfg.SMS.SMSIR.TemplateID,
		AppName:       notify.DefaultTitle,
		BaseURL:       cfg.Server.Domain,
	})
}
