package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IGBS-Global/Quisin-V11/docs"
	"github.com/IGBS-Global/Quisin-V11/internal/queue"
	"github.com/IGBS-Global/Quisin-V11/internal/ratelimiter"
	"github.com/IGBS-Global/Quisin-V11/internal/repo"
	"github.com/IGBS-Global/Quisin-V11/internal/service"
	"github.com/IGBS-Global/Quisin-V11/internal/store/postgres"
	"github.com/IGBS-Global/Quisin-V11/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config       config
	logger       *zap.SugaredLogger
	rateLimiter  ratelimiter.Limiter
	storage      *postgres.Storage
	broker       queue.Broker
	menuRepo     repo.MenuRepository
	staffRepo    repo.StaffRepository
	tableRepo    repo.TableRepository
	orderService *service.OrderService
	authService  *service.AuthService
	eventsWorker *worker.OrderEventsWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	db          dbConfig
	rabbitMQ    rabbitMQConfig
	admin       service.AdminConfig
}

type dbConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
	MaxLifetime  time.Duration
	Timeout      time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// any origin, same as the clients expect
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Use(app.RateLimiterMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/menu", app.listMenuHandler)
		r.Post("/menu", app.createMenuItemHandler)

		r.Get("/staff", app.listStaffHandler)
		r.Post("/staff", app.createStaffHandler)

		r.Get("/tables", app.listTablesHandler)
		r.Post("/tables", app.createTableHandler)

		r.Get("/orders", app.listOrdersHandler)
		r.Post("/orders", app.createOrderHandler)

		r.Post("/auth/login", app.loginHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Quisin"
	docs.SwaggerInfo.Description = "Restaurant operations API for Quisin"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api"

	// workers
	if app.eventsWorker != nil {
		if err := app.eventsWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order events worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.eventsWorker != nil {
			app.eventsWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(); err != nil {
				app.logger.Errorw("error closing PostgreSQL", "error", err)
			} else {
				app.logger.Info("PostgreSQL connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
