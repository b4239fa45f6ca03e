package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/animationlms/platform-api/internal/api"
	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
	"github.com/animationlms/platform-api/internal/core/service"
	"github.com/animationlms/platform-api/internal/infrastructure/config"
	"github.com/animationlms/platform-api/internal/infrastructure/db/memory"
	mongodb "github.com/animationlms/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/animationlms/platform-api/internal/infrastructure/db/redis"
	"github.com/animationlms/platform-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB (signup records) ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	// --- Session store ---
	var sessionStore ports.SessionStore
	var rdb *redis.Client
	switch cfg.Auth.SessionBackend {
	case "memory":
		sessionStore = memory.NewSessionStore()
		log.Warn().Msg("sessions kept in memory; they will not survive a restart")
	default:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()
		sessionStore = redisdb.NewSessionStore(client, cfg.Auth.SessionTTL)
		rdb = client
	}

	// --- Credential store ---
	creds, err := seedCredentials(cfg.Auth.SeedPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed credential store")
	}
	credentialRepo := memory.NewCredentialRepository(creds)

	// --- Services ---
	authService := service.NewAuthService(credentialRepo, sessionStore, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	signupService := service.NewSignupService(mongodb.NewSignupRepository(db), log)
	catalogService := service.NewCatalogService(memory.NewCatalogRepository(), log)

	e := api.NewRouter(api.RouterConfig{
		AuthService:    authService,
		SignupService:  signupService,
		CatalogService: catalogService,
		Credentials:    credentialRepo,
		Mongo:          db,
		Redis:          rdb,
		JWTSecret:      cfg.Auth.JWTSecret,
		Logger:         log,
	})

	// --- Serve with graceful shutdown ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// seedCredentials builds the fixed account table. The demo password is
// hashed at startup so the verification path is identical to a production
// per-account hash store.
func seedCredentials(password string) ([]domain.Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return []domain.Credential{
		{
			User: domain.User{
				ID:        "1",
				Email:     "admin@animationlms.com",
				Name:      "Super Admin",
				Role:      domain.RoleSuperUser,
				CreatedAt: now,
			},
			PasswordHash: string(hash),
		},
		{
			User: domain.User{
				ID:        "2",
				Email:     "student@example.com",
				Name:      "John Student",
				Role:      domain.RoleNormalUser,
				CreatedAt: now,
			},
			PasswordHash: string(hash),
		},
	}, nil
}
