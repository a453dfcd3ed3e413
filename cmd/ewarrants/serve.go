package main

import (
	"context"
	"log/slog"
	"os"

	"ewarrants/config"
	"ewarrants/internal/delivery"
	"ewarrants/internal/delivery/api"
	"ewarrants/internal/delivery/api/middleware"
	"ewarrants/internal/delivery/api/router/handler"
	"ewarrants/internal/delivery/scheduler"
	"ewarrants/internal/infra/auth"
	"ewarrants/internal/infra/imagesearch"
	"ewarrants/internal/infra/llm"
	logs "ewarrants/internal/infra/log"
	"ewarrants/internal/infra/mail"
	"ewarrants/internal/infra/persistence/postgres"
	"ewarrants/internal/infra/storage"
	"ewarrants/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the reminder scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fx.New(
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
		)
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()

		return nil
	},
}

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewWarrantyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewCodeGenerator,
			mail.NewSMTPMailer,
			storage.New,
			llm.New,
			imagesearch.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewWarrantyService,
			impl.NewAccountService,
			impl.NewAttachmentService,
			impl.NewAssistantService,
			impl.NewReminderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewWarrantyHandler,
			handler.NewAccountHandler,
			handler.NewAssistantHandler,
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
				scheduler.New,
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
