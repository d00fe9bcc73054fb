package main

import (
	"context"
	"log/slog"
	"os"

	"taskflow/config"
	"taskflow/internal/delivery"
	"taskflow/internal/delivery/api"
	"taskflow/internal/delivery/api/middleware"
	"taskflow/internal/delivery/api/router/handler"
	deliverymiddleware "taskflow/internal/delivery/middleware"
	"taskflow/internal/delivery/worker"
	"taskflow/internal/domain/constants"
	"taskflow/internal/domain/repository"
	"taskflow/internal/errors"
	"taskflow/internal/infra/auth"
	logs "taskflow/internal/infra/log"
	"taskflow/internal/infra/persistence/memory"
	"taskflow/internal/infra/persistence/postgres"
	"taskflow/internal/infra/pubsub"
	"taskflow/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		pubsub.Module,
	)
}

type repoParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type repositories struct {
	fx.Out

	UserRepo         repository.UserRepository
	TaskRepo         repository.TaskRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TxManager        repository.TransactionManager
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

// newRepositories picks the store named by storage.driver.
func newRepositories(params repoParams) (repositories, error) {
	switch params.Config.Storage.Driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()

		return repositories{
			UserRepo:         memory.NewUserRepository(store),
			TaskRepo:         memory.NewTaskRepository(store),
			RefreshTokenRepo: memory.NewRefreshTokenRepository(store),
			TxManager:        memory.NewTransactionManager(store),
		}, nil
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			UserRepo:         postgres.NewUserRepository(db),
			TaskRepo:         postgres.NewTaskRepository(db),
			RefreshTokenRepo: postgres.NewRefreshTokenRepository(db),
			TxManager:        postgres.NewTransactionManager(db),
		}, nil
	default:
		return repositories{}, errors.Errorf("unsupported storage driver: %s", params.Config.Storage.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewTaskService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
			deliverymiddleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTaskHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
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
