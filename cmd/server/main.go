package main // Entry point package

import (
	"context"
	"log" // Logging library
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/pitchside/turf-booking/internal/config"
	"github.com/pitchside/turf-booking/internal/database"
	"github.com/pitchside/turf-booking/internal/handler"
	"github.com/pitchside/turf-booking/internal/middleware"
	"github.com/pitchside/turf-booking/internal/queue"
	"github.com/pitchside/turf-booking/internal/repository"
	"github.com/pitchside/turf-booking/internal/router"
	"github.com/pitchside/turf-booking/internal/service"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("database schema: %v", err)
	}

	// Redis is optional: without it caching and rate limiting degrade to
	// pass-through middlewares.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	// The booking consumer runs for the life of the process and reconnects
	// on its own; a broker outage never takes the API down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	turfs := repository.NewTurfRepo(db)
	bookings := repository.NewBookingRepo(db)
	favorites := repository.NewFavoriteRepo(db)

	authSvc := service.NewAuthService(users, cfg.JWTSecret, cfg.AccessTTLHrs, cfg.BcryptCost)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.Register(e, router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Turfs:     handler.NewTurfHandler(turfs),
		Bookings:  handler.NewBookingHandler(bookings, turfs),
		Favorites: handler.NewFavoriteHandler(favorites, turfs),
		JWTSecret: cfg.JWTSecret,
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
