package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/food-donation-service/docs"
	"github.com/SergeyBogomolovv/food-donation-service/internal/app"
	"github.com/SergeyBogomolovv/food-donation-service/internal/config"
	"github.com/SergeyBogomolovv/food-donation-service/internal/events"
	"github.com/SergeyBogomolovv/food-donation-service/internal/gateway"
	"github.com/SergeyBogomolovv/food-donation-service/internal/handler"
	"github.com/SergeyBogomolovv/food-donation-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-donation-service/internal/postgres"
	"github.com/SergeyBogomolovv/food-donation-service/internal/repo"
	"github.com/SergeyBogomolovv/food-donation-service/internal/service"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/cache"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Food Donation Service API
// @version         1.0
// @description     HTTP API для доноров, NGO и волонтеров поверх REST API платформы
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")
	panicIfErr("failed to migrate db", postgres.Migrate(db, conf.Postgres))

	journal := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	cartCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.CartTTL)
	sessionCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.SessionTTL)
	boardCache := cache.NewLRUCache(conf.Cache.AssignmentCapacity, conf.Cache.AssignmentTTL)

	var publisher interface {
		service.EventPublisher
		app.Closer
	} = events.Nop{}
	if conf.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(logger, conf.Kafka)
		logger.Info("kafka publisher enabled", slog.String("topic", conf.Kafka.Topic))
	}

	platform := gateway.New(logger, conf.Platform)

	authService := service.NewAuthService(logger, platform, repo.NewSessionStore(sessionCache))
	statsService := service.NewStatsService(platform)
	donorService := service.NewDonorService(logger, platform)
	ngoService := service.NewNGOService(logger, platform, platform, repo.NewCartStore(cartCache), txManager, journal, publisher)
	volunteerService := service.NewVolunteerService(logger, platform, platform, repo.NewAssignmentStore(boardCache), journal, publisher)

	authMw := middleware.Auth(logger, authService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewAuthHandler(logger, authService, authMw),
		handler.NewStatsHandler(logger, statsService),
		handler.NewDonorHandler(logger, donorService, authMw),
		handler.NewNGOHandler(logger, ngoService, authMw),
		handler.NewVolunteerHandler(logger, volunteerService, authMw),
	)
	app.SetStarters(cartCache, sessionCache, boardCache)
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
