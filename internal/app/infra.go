package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/dealerdesk/dealerdesk_backend/config"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo"
	"github.com/dealerdesk/dealerdesk_backend/pkg/database"
	"github.com/dealerdesk/dealerdesk_backend/pkg/email"
	"github.com/dealerdesk/dealerdesk_backend/pkg/observability"
	"github.com/dealerdesk/dealerdesk_backend/pkg/offline"
	redispkg "github.com/dealerdesk/dealerdesk_backend/pkg/redis"
	s3pkg "github.com/dealerdesk/dealerdesk_backend/pkg/s3"
	"github.com/dealerdesk/dealerdesk_backend/pkg/sms"
	"github.com/dealerdesk/dealerdesk_backend/pkg/webpush"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideSMSClient),
	fx.Provide(ProvideWebPushClient),
	fx.Provide(ProvideS3Client),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideOfflineStore),
	fx.Provide(ProvideOfflineFetcher),
	fx.Provide(ProvideOfflineManager),
	fx.Provide(ProvideOfflineInterceptor),
)

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideSMSClient(cfg *config.Config) (*sms.Client, error) {
	return sms.NewFromConfig(cfg.SMS)
}

func ProvideWebPushClient(cfg *config.Config) (*webpush.Client, error) {
	return webpush.NewFromConfig(cfg.Push)
}

func ProvideS3Client(cfg *config.Config) (*s3pkg.Client, error) {
	if !cfg.Sounds.Enabled {
		return nil, nil
	}
	return s3pkg.New(cfg.Sounds.S3)
}

func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

func ProvideOfflineStore(rdb *redis.Client, cfg *config.Config) offline.Store {
	if !cfg.Offline.Enabled {
		return nil
	}
	return offline.NewRedisStore(rdb)
}

func ProvideOfflineFetcher(cfg *config.Config) offline.Fetcher {
	if !cfg.Offline.Enabled {
		return nil
	}
	return offline.NewHTTPFetcher(cfg.Offline.UpstreamURL, &http.Client{Timeout: 30 * time.Second})
}

func ProvideOfflineManager(store offline.Store, fetch offline.Fetcher, cfg *config.Config) *offline.Manager {
	if !cfg.Offline.Enabled {
		return nil
	}
	return offline.NewManager(store, fetch, cfg.Offline.CacheVersion, cfg.Offline.Precache, slog.Default())
}

func ProvideOfflineInterceptor(store offline.Store, fetch offline.Fetcher, mgr *offline.Manager, cfg *config.Config) *offline.Interceptor {
	if !cfg.Offline.Enabled {
		return nil
	}
	return offline.NewInterceptor(store, fetch, mgr, offline.InterceptorConfig{
		Origin:       cfg.Offline.Origin,
		APIPrefix:    cfg.Offline.APIPrefix,
		OfflinePage:  cfg.Offline.OfflinePage,
		SkipPatterns: cfg.Offline.SkipPatterns,
	}, slog.Default())
}
