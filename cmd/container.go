package main

import (
	"context"
	"time"

	"github.com/Abraxas-365/conecta/personalization"
	"github.com/Abraxas-365/conecta/personalization/personalizationapi"
	"github.com/Abraxas-365/conecta/personalization/personalizationinfra"
	"github.com/Abraxas-365/conecta/personalization/personalizationsrv"
	"github.com/Abraxas-365/conecta/personalization/worker"
	"github.com/Abraxas-365/conecta/pkg/config"
	"github.com/Abraxas-365/conecta/pkg/logx"
	"github.com/Abraxas-365/conecta/recruitment/candidate/candidateapi"
	"github.com/Abraxas-365/conecta/recruitment/candidate/candidateinfra"
	"github.com/Abraxas-365/conecta/recruitment/candidate/candidatesrv"
	"github.com/Abraxas-365/conecta/recruitment/job/jobapi"
	"github.com/Abraxas-365/conecta/recruitment/job/jobinfra"
	"github.com/Abraxas-365/conecta/recruitment/job/jobsrv"
	"github.com/Abraxas-365/conecta/recruitment/matching/matchingapi"
	"github.com/Abraxas-365/conecta/recruitment/matching/matchingsrv"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Recruitment Services
	CandidateService *candidatesrv.CandidateService
	JobService       *jobsrv.JobService
	MatchingService  *matchingsrv.MatchingService

	// Personalization
	PersonalizationService *personalizationsrv.PersonalizationService
	EventQueue             personalization.EventQueue
	Worker                 *worker.PersonalizationWorker

	// API Handlers
	CandidateHandlers       *candidateapi.Handlers
	JobHandlers             *jobapi.Handlers
	MatchingHandlers        *matchingapi.Handlers
	PersonalizationHandlers *personalizationapi.Handlers
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
	db, err := sqlx.Connect("postgres", c.Config.Database.DSN())
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
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)

	// --- Personalization Infrastructure ---
	profileStore := personalizationinfra.NewRedisProfileStore(c.Redis, c.Config.Personalization.ProfileTTL)
	c.EventQueue = personalizationinfra.NewRedisEventQueue(c.Redis, c.Config.Personalization.QueueName)

	// --- Domain Services ---
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo)
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.MatchingService = matchingsrv.NewMatchingService(candidateRepo, jobRepo)
	c.PersonalizationService = personalizationsrv.NewPersonalizationService(
		profileStore,
		c.EventQueue,
		personalization.NewEngine(c.Config.Personalization.StaticInterests...),
		c.Config.Personalization.PageEventWindow,
	)

	// --- Worker Pool ---
	c.Worker = worker.NewPersonalizationWorker(
		c.PersonalizationService,
		c.EventQueue,
		c.Config.Personalization.Workers,
		c.Config.Personalization.DequeueTimeout,
		c.Config.Personalization.DelayedSweepTick,
	)

	// --- Handlers ---
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.MatchingHandlers = matchingapi.NewHandlers(c.MatchingService)
	c.PersonalizationHandlers = personalizationapi.NewHandlers(c.PersonalizationService)
}
