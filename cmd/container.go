package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Abraxas-365/jobtrack/internal/ai/embeddings"
	"github.com/Abraxas-365/jobtrack/internal/ai/oracle"
	"github.com/Abraxas-365/jobtrack/internal/config"
	"github.com/Abraxas-365/jobtrack/pkg/logx"
	"github.com/Abraxas-365/jobtrack/tracking/analysis/analysisapi"
	"github.com/Abraxas-365/jobtrack/tracking/analysis/analysissrv"
	"github.com/Abraxas-365/jobtrack/tracking/job/jobapi"
	"github.com/Abraxas-365/jobtrack/tracking/job/jobinfra"
	"github.com/Abraxas-365/jobtrack/tracking/job/jobsrv"
	"github.com/Abraxas-365/jobtrack/tracking/user/userauth"
	"github.com/Abraxas-365/jobtrack/tracking/user/userinfra"
	"github.com/Abraxas-365/jobtrack/tracking/user/usersrv"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// AI
	Oracle     oracle.Oracle
	Embeddings embeddings.Generator

	// Services
	TokenService *userauth.TokenService
	UserService  *usersrv.Service
	JobService   *jobsrv.Service
	Pipeline     *analysissrv.Pipeline

	// API Handlers
	AuthHandlers     *userauth.AuthHandlers
	JobHandlers      *jobapi.JobHandlers
	AnalysisHandlers *analysisapi.AnalysisHandlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.DatabaseDSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AI Clients
	// A missing key is a startup error: every analysis request would fail.
	if c.Config.OpenAI.APIKey == "" {
		logx.Fatal("OPENAI_API_KEY is not set")
	}
	c.Oracle = oracle.NewClient(c.Config.OpenAI.APIKey, c.Config.OpenAI.Model)
	c.Embeddings = embeddings.NewOpenAIGenerator(c.Config.OpenAI.APIKey, c.Config.OpenAI.EmbedModel)

	// 4. Auth secrets
	if c.Config.Auth.JWTSecret == "" || c.Config.Auth.JWTRefreshSecret == "" {
		logx.Fatal("JWT_SECRET and JWT_REFRESH_SECRET must be set")
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	resetTokenStore := userinfra.NewRedisResetTokenStore(c.Redis)
	passwordHasher := userinfra.NewBcryptHasher()

	// --- Services ---
	c.TokenService = userauth.NewTokenService(
		c.Config.Auth.JWTSecret,
		c.Config.Auth.JWTRefreshSecret,
		c.Config.Auth.AccessTokenTTL,
		c.Config.Auth.RefreshTokenTTL,
	)
	c.UserService = usersrv.NewService(userRepo, passwordHasher, c.TokenService, resetTokenStore, c.Config.Auth.ResetTokenTTL)
	c.JobService = jobsrv.NewService(jobRepo, c.Embeddings)
	c.Pipeline = analysissrv.NewPipeline(c.Oracle, c.Config.Upload.SpoolDir, c.Config.OpenAI.Timeout)

	// --- Handlers ---
	c.AuthHandlers = userauth.NewAuthHandlers(c.UserService)
	c.JobHandlers = jobapi.NewJobHandlers(c.JobService)
	c.AnalysisHandlers = analysisapi.NewAnalysisHandlers(c.Pipeline, c.Config.Upload.MaxFileSize)
}
