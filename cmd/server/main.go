package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hackfest/internal/http/handlers"
	eventh "hackfest/internal/http/handlers/event"
	teamh "hackfest/internal/http/handlers/team"
	ticketh "hackfest/internal/http/handlers/ticket"
	userh "hackfest/internal/http/handlers/user"
	mw "hackfest/internal/http/middleware"
	"hackfest/internal/lib/config"
	"hackfest/internal/lib/mailer"
	"hackfest/internal/lib/metrics"
	"hackfest/internal/lib/sl"
	repo "hackfest/internal/repository"
	"hackfest/internal/service/event"
	"hackfest/internal/service/team"
	"hackfest/internal/service/ticket"
	"hackfest/internal/service/user"
	"hackfest/migrations"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting hackfest", slog.String("env", cfg.Env))

	if cfg.Storage.AutoMigrate {
		if err := migrations.Up(cfg.Storage.DSN); err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	db, err := sqlx.Connect("postgres", cfg.Storage.DSN)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Storage.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Storage.MaxIdleConns)

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "hackfest"),
	)
	appMetrics := metrics.New(reg)

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	inviteRepo := repo.NewInviteRepo(db, trmsqlx.DefaultCtxGetter)
	eventRepo := repo.NewEventRepo(db, trmsqlx.DefaultCtxGetter)
	ticketRepo := repo.NewTicketRepo(db, trmsqlx.DefaultCtxGetter)

	teamOpts := []team.Option{
		team.WithMetrics(appMetrics),
		team.WithSearchLimits(cfg.Teams.SearchDefaultLimit, cfg.Teams.SearchMaxLimit),
	}
	if cfg.MailEnabled() {
		m, err := mailer.New(cfg.Mail)
		if err != nil {
			log.Error("failed to init mailer", sl.Err(err))
			os.Exit(1)
		}
		teamOpts = append(teamOpts, team.WithNotifier(m))
	} else {
		log.Warn("smtp host is not set, invite e-mails are disabled")
	}

	teamService := team.NewTeamService(log, trManager, teamRepo, inviteRepo, userRepo, teamOpts...)
	eventService := event.NewEventService(trManager, eventRepo)
	ticketService := ticket.NewTicketService(trManager, ticketRepo, eventRepo)
	userService := user.NewUserService(userRepo)

	teamHandler := teamh.NewTeamHandler(log, teamService)
	eventHandler := eventh.NewEventHandler(log, eventService)
	ticketHandler := ticketh.NewTicketHandler(log, ticketService)
	userHandler := userh.NewUserHandler(log, userService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(mw.Metrics(appMetrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	// public methods
	router.Get("/health", handlers.Healthcheck(log, db))
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.Get("/events", eventHandler.List)
	router.Get("/events/upcoming", eventHandler.Upcoming)
	router.Get("/events/latest", eventHandler.Latest)
	router.Get("/events/{id}", eventHandler.Get)

	auth := mw.Auth(cfg.Auth.JWTSecret, cfg.Auth.CookieName)

	// user methods
	router.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/teams", teamHandler.Create)
		r.Get("/teams/mine", teamHandler.Mine)
		r.Get("/users/search", teamHandler.SearchUsers)
		r.Get("/invites", teamHandler.Invites)
		r.Post("/invites/{id}/respond", teamHandler.Respond)

		r.Post("/tickets", ticketHandler.Create)
		r.Get("/tickets/mine", ticketHandler.Mine)
	})

	// admin methods
	router.Route("/admin", func(r chi.Router) {
		r.Use(auth)
		r.Use(mw.AdminOnly(log, userRepo))

		r.Get("/teams", teamHandler.List)
		r.Get("/teams/{id}", teamHandler.Get)
		r.Delete("/teams/{id}", teamHandler.Delete)
		r.Post("/teams/{id}/approve", teamHandler.Approve)

		r.Post("/events", eventHandler.Create)
		r.Patch("/events/{id}", eventHandler.Update)
		r.Delete("/events/{id}", eventHandler.Delete)
		r.Get("/events/{id}/tickets", ticketHandler.ListByEvent)

		r.Get("/tickets", ticketHandler.List)
		r.Get("/tickets/{id}", ticketHandler.Get)
		r.Patch("/tickets/{id}", ticketHandler.Update)
		r.Delete("/tickets/{id}", ticketHandler.Delete)
		r.Post("/tickets/{id}/approve", ticketHandler.Approve)

		r.Get("/users", userHandler.List)
		r.Get("/users/{id}", userHandler.Get)
		r.Delete("/users/{id}", userHandler.Delete)
		r.Post("/users/{id}/admin", userHandler.SetAdmin)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
