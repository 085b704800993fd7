package main

import (
	"context"
	"log/slog"
	"os"

	"marketfront/config"
	"marketfront/internal/delivery"
	deliveryhttp "marketfront/internal/delivery/http"
	"marketfront/internal/delivery/http/middleware"
	"marketfront/internal/delivery/http/router/handler"
	httpsession "marketfront/internal/delivery/http/session"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/domain/store"
	"marketfront/internal/infra/auth"
	"marketfront/internal/infra/backend"
	"marketfront/internal/infra/fixture"
	logs "marketfront/internal/infra/log"
	infrasession "marketfront/internal/infra/session"
	"marketfront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectGateways(),
		injectUsecase(),
		injectMiddleware(),
		injectHandlers(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		auth.NewBcryptHasher,
		auth.NewJWTService,
		newSessionStore,
	)
}

// newSessionStore picks the durable session store: Redis when configured,
// otherwise process memory.
func newSessionStore(ctx context.Context, cfg *config.Config) (store.SessionStore, error) {
	if cfg.Redis != nil {
		return infrasession.NewRedisStore(ctx, cfg.Redis)
	}

	return infrasession.NewMemoryStore(), nil
}

// injectGateways wires one implementation per backend resource. The
// fixtures flag swaps the HTTP client for the seeded in-memory set; no
// call site branches on it afterwards.
func injectGateways() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewClient,
			fixture.NewFixture,
			newAuthGateway,
			newCatalogGateway,
			newCartGateway,
			newOrderGateway,
			newVendorGateway,
			newAdminGateway,
		),
	)
}

func newAuthGateway(cfg *config.Config, client *backend.Client, fix *fixture.Fixture) gateway.AuthGateway {
	if cfg.Backend.UseFixtures {
		return fixture.NewAuthGateway(fix)
	}

	return backend.NewAuthGateway(client)
}

func newCatalogGateway(cfg *config.Config, client *backend.Client, fix *fixture.Fixture) gateway.CatalogGateway {
	if cfg.Backend.UseFixtures {
		return fixture.NewCatalogGateway(fix)
	}

	return backend.NewCatalogGateway(client)
}

func newCartGateway(cfg *config.Config, client *backend.Client, fix *fixture.Fixture) gateway.CartGateway {
	if cfg.Backend.UseFixtures {
		return fixture.NewCartGateway(fix)
	}

	return backend.NewCartGateway(client)
}

func newOrderGateway(cfg *config.Config, client *backend.Client, fix *fixture.Fixture) gateway.OrderGateway {
	if cfg.Backend.UseFixtures {
		return fixture.NewOrderGateway(fix)
	}

	return backend.NewOrderGateway(client)
}

func newVendorGateway(cfg *config.Config, client *backend.Client, fix *fixture.Fixture) gateway.VendorGateway {
	if cfg.Backend.UseFixtures {
		return fixture.NewVendorGateway(fix)
	}

	return backend.NewVendorGateway(client)
}

func newAdminGateway(cfg *config.Config, client *backend.Client, fix *fixture.Fixture) gateway.AdminGateway {
	if cfg.Backend.UseFixtures {
		return fixture.NewAdminGateway(fix)
	}

	return backend.NewAdminGateway(client)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewVendorService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpsession.NewManager,
			middleware.NewSessionMiddleware,
			middleware.NewGuardMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandlers() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewCustomerHandler,
			handler.NewVendorHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
