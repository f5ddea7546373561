package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/config"
	infraCache "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/infrastructure/cache"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/infrastructure/database"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/infrastructure/openlibrary"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/cache"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/jwt"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/author"
	authorHandler "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/author/handler"
	authorRepo "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/author/repository"
	authorService "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/author/service"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material"
	materialHandler "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material/handler"
	materialRepo "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material/repository"
	materialService "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material/service"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/user"
	userHandler "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/user/handler"
	userRepo "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/user/repository"
	userService "github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it
// is a singleton wired once at startup.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Lookup     material.CatalogLookup

	UserRepo     user.Repository
	AuthorRepo   author.Repository
	MaterialRepo material.Repository

	UserService     user.Service
	AuthorService   author.Service
	MaterialService material.Service

	UserHandler     *userHandler.UserHandler
	AuthorHandler   *authorHandler.AuthorHandler
	MaterialHandler *materialHandler.MaterialHandler

	redisCache *infraCache.RedisCache
}

// NewContainer builds the whole graph in dependency order:
// config, then infrastructure, then repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis failure is non-critical: repositories degrade to
	// database-only reads.
	c.redisCache = infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := c.redisCache.Connect(context.Background()); err != nil {
		log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
	}
	c.Cache = c.redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	c.Lookup = openlibrary.NewClient(cfg.OpenLibrary.BaseURL, cfg.OpenLibrary.Timeout)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("[CONTAINER] Dependency graph initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.MaterialRepo = materialRepo.NewPostgresRepository(pool, c.Cache)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.MaterialService = materialService.NewMaterialService(c.MaterialRepo, c.AuthorRepo, c.Lookup)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.MaterialHandler = materialHandler.NewMaterialHandler(c.MaterialService)
}

// Cleanup releases infrastructure resources on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Println("[CONTAINER] Database connections closed")
	}

	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close Redis: %v", err)
		} else {
			log.Println("[CONTAINER] Redis connections closed")
		}
	}
}
