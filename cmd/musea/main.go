package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"musea/config"
	"musea/internal/delivery"
	"musea/internal/delivery/http"
	"musea/internal/delivery/http/middleware"
	"musea/internal/delivery/http/router/handler"
	"musea/internal/domain/repository"
	"musea/internal/infra/auth"
	"musea/internal/infra/chatbot"
	logs "musea/internal/infra/log"
	"musea/internal/infra/metrics"
	"musea/internal/infra/persistence/memory"
	"musea/internal/infra/persistence/mongodb"
	"musea/internal/infra/persistence/postgres"
	"musea/internal/infra/qrcode"
	"musea/internal/infra/session"
	"musea/internal/usecase/impl"
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
			seedStorage,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
	)
}

type storeParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newStore selects the persistence backend from config. An unreachable
// document backend degrades to the seeded in-memory store so the site stays
// browsable.
func newStore(params storeParams) (repository.Store, error) {
	switch params.Config.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewStore(db, params.Logger), nil

	case config.DriverMongo:
		client, err := mongodb.Connect(context.Background(), params.Config, params.Logger)
		if err != nil {
			params.Logger.Warn("MongoDB unreachable, falling back to in-memory storage",
				slog.Any("error", err))

			return memory.NewStore(), nil
		}

		params.Append(fx.Hook{
			OnStop: client.Disconnect,
		})

		return mongodb.NewStore(client, params.Config, params.Logger), nil

	default:
		return memory.NewStore(), nil
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStore,
			func(s repository.Store) repository.UserRepository { return s },
			func(s repository.Store) repository.ExhibitionRepository { return s },
			func(s repository.Store) repository.TicketTypeRepository { return s },
			func(s repository.Store) repository.TicketRepository { return s },
			func(s repository.Store) repository.ConversationRepository { return s },
			func(s repository.Store) repository.AnalyticsRepository { return s },
			func(s repository.Store) repository.TestimonialRepository { return s },
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			chatbot.NewResponder,
			session.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewExhibitionService,
			impl.NewTicketTypeService,
			impl.NewTicketService,
			impl.NewChatService,
			impl.NewTestimonialService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewExhibitionHandler,
			handler.NewTicketTypeHandler,
			handler.NewTicketHandler,
			handler.NewChatHandler,
			handler.NewTestimonialHandler,
			handler.NewAnalyticsHandler,
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

// seedStorage runs migrations and fixture seeding once the backend is up.
func seedStorage(lc fx.Lifecycle, store repository.Store) {
	lc.Append(fx.Hook{
		OnStart: store.InitializeData,
	})
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
