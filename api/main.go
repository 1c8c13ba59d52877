package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/auth"
	"github.com/tidepool-org/dieticians/authz"
	"github.com/tidepool-org/dieticians/config"
	"github.com/tidepool-org/dieticians/dieticians"
	dieticiansRepository "github.com/tidepool-org/dieticians/dieticians/repository"
	dieticiansService "github.com/tidepool-org/dieticians/dieticians/service"
	internalErrors "github.com/tidepool-org/dieticians/errors"
	"github.com/tidepool-org/dieticians/logger"
	"github.com/tidepool-org/dieticians/openapi"
	"github.com/tidepool-org/dieticians/outbox"
	patientsRepository "github.com/tidepool-org/dieticians/patients/repository"
	"github.com/tidepool-org/dieticians/store"
)

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(cfg.ServerAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Errorw("http server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

// SetReady depends on the dieticians service so that the repository hooks creating the
// indexes are registered, and run, before the readiness hook.
func SetReady(healthCheck *HealthCheck, db *mongo.Database, _ dieticians.Service, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Ping(ctx, db); err != nil {
				return err
			}

			healthCheck.SetReady(true)
			return nil
		},
	})
}

type ServerParams struct {
	fx.In

	Handler       *Handler
	HealthCheck   *HealthCheck
	Authenticator auth.Authenticator
	Logger        *zap.Logger
}

func NewServer(p ServerParams) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	requestValidator, err := NewRequestValidator()
	if err != nil {
		return nil, err
	}

	// Skip auth and logging for the readiness probe
	skipper := RouteSkipper(ReadinessPath)
	authMiddleware := auth.NewAuthMiddleware(p.Authenticator, auth.AuthMiddlewareOpts{
		Skipper: skipper,
		Logger:  p.Logger.Sugar(),
	})

	e.Use(middleware.Recover())
	e.Use(WithSkipper(skipper, echozap.ZapLogger(p.Logger)))
	e.Use(authMiddleware)

	e.Validator = requestValidator
	e.HTTPErrorHandler = internalErrors.CustomHTTPErrorHandler

	e.GET(ReadinessPath, p.HealthCheck.Ready)
	RegisterHandlers(e, p.Handler)

	return e, nil
}

// Dependencies returns the providers shared by the server and the command line tools
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			openapi.Load,
			dieticians.NewSchemaValidator,
			dieticiansRepository.NewRepository,
			outbox.NewRepository,
			dieticiansService.NewService,
			patientsRepository.NewRepository,
			auth.NewAuthenticator,
			authz.NewAuthorizer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	options := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)

	fx.New(options...).Run()
}
