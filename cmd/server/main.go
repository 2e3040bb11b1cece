package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vanhoutenbos/golfapp/internal/cache"
	"github.com/vanhoutenbos/golfapp/internal/common/clock"
	commonUUID "github.com/vanhoutenbos/golfapp/internal/common/uuid"
	"github.com/vanhoutenbos/golfapp/internal/handlers/httpapi"
	"github.com/vanhoutenbos/golfapp/internal/notify"
	playerRepo "github.com/vanhoutenbos/golfapp/internal/repositories/player"
	scoreRepo "github.com/vanhoutenbos/golfapp/internal/repositories/score"
	tournamentRepo "github.com/vanhoutenbos/golfapp/internal/repositories/tournament"
	"github.com/vanhoutenbos/golfapp/internal/services/scoring"
	syncService "github.com/vanhoutenbos/golfapp/internal/services/sync"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if getEnv("LOG_PRETTY", "") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	scores, err := scoreRepo.NewRedis(&scoreRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create score repository")
	}

	tournaments, err := tournamentRepo.NewRedis(&tournamentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create tournament repository")
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create player repository")
	}

	// Initialize leaderboard cache and change notifier
	leaderboardCache, err := cache.NewRedis(&cache.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create leaderboard cache")
	}

	notifier, err := notify.NewRedis(&notify.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create change notifier")
	}

	// Initialize services
	syncSvc, err := syncService.New(&syncService.Config{
		ScoreRepo:      scores,
		TournamentRepo: tournaments,
		Resolver:       syncService.NewResolver(),
		Cache:          leaderboardCache,
		Notifier:       notifier,
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  commonUUID.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sync service")
	}

	scoringSvc, err := scoring.New(&scoring.Config{
		ScoreRepo:      scores,
		PlayerRepo:     players,
		TournamentRepo: tournaments,
		Cache:          leaderboardCache,
		CacheTTL:       getEnvDuration("LEADERBOARD_CACHE_TTL", 30*time.Second),
		Clock:          &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create scoring service")
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		SyncService:    syncSvc,
		ScoringService: scoringSvc,
		ThrottleLimit:  getEnvInt("HTTP_THROTTLE_LIMIT", 100),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP handler")
	}

	addr := getEnv("HTTP_ADDR", ":8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
	}

	log.Info().Msg("server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring non-integer environment variable")
		return defaultValue
	}
	return parsed
}

// getEnvDuration gets a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring unparseable duration environment variable")
		return defaultValue
	}
	return parsed
}
