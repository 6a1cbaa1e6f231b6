package main

import (
	"context"
	"log/slog"
	"os"

	"pantry/config"
	"pantry/internal/delivery"
	"pantry/internal/delivery/http"
	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router/handler"
	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/infra/auth"
	"pantry/internal/infra/device"
	logs "pantry/internal/infra/log"
	"pantry/internal/infra/memory"
	"pantry/internal/infra/notification"
	"pantry/internal/infra/securestore"
	"pantry/internal/usecase/impl"

	"github.com/google/uuid"
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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDemoProducts,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCredentialStore,
			memory.NewProductRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSHA3Digester,
			auth.NewJWTService,
			notification.NewNotifier,
			newHaptics,
			newConfirmer,
		),
	)
}

// newCredentialStore builds the file-backed secure store at the configured path
func newCredentialStore(cfg *config.Config) repository.CredentialStore {
	return securestore.NewFileStore(cfg.Store.Path)
}

// newHaptics wires the server-side haptics stand-in; the real vibration
// happens on the device, here each pulse is only logged.
func newHaptics(logger *slog.Logger) service.Haptics {
	return device.NewLogHaptics(logger)
}

// newConfirmer wires the deletion prompt stand-in. The device shell owns the
// real dialog, so the server-side confirmer accepts unconditionally.
func newConfirmer() service.Confirmer {
	return device.NewStaticConfirmer(true)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProductService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedDemoProducts preloads the sample inventory when seed.demo is enabled.
// It writes straight to the repository so no notifications fire at startup.
func seedDemoProducts(ctx context.Context, cfg *config.Config, products repository.ProductRepository) error {
	if cfg.Seed == nil || !cfg.Seed.Demo {
		return nil
	}

	demo := []*entity.Product{
		{ID: uuid.NewString(), Name: "Arroz", Quantity: 0, ExpiryDate: "06-01-2025", Exits: 50, Price: 5.5},
		{ID: uuid.NewString(), Name: "Feijão", Quantity: 10, ExpiryDate: "12-10-2024", Exits: 30, Price: 7.2},
	}
	for _, product := range demo {
		if err := products.Insert(ctx, product); err != nil {
			return err
		}
	}

	return nil
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
