package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-catalog-backend/internal/config"
	infraCache "library-catalog-backend/internal/infrastructure/cache"
	"library-catalog-backend/internal/infrastructure/database"
	"library-catalog-backend/pkg/cache"

	"library-catalog-backend/internal/domains/author"
	authorHandler "library-catalog-backend/internal/domains/author/handler"
	authorRepo "library-catalog-backend/internal/domains/author/repository"
	authorService "library-catalog-backend/internal/domains/author/service"

	"library-catalog-backend/internal/domains/publisher"
	publisherHandler "library-catalog-backend/internal/domains/publisher/handler"
	publisherRepo "library-catalog-backend/internal/domains/publisher/repository"
	publisherService "library-catalog-backend/internal/domains/publisher/service"

	"library-catalog-backend/internal/domains/book"
	bookHandler "library-catalog-backend/internal/domains/book/handler"
	bookRepo "library-catalog-backend/internal/domains/book/repository"
	bookService "library-catalog-backend/internal/domains/book/service"
)

// Container holds every dependency of the application and is the root of
// the dependency graph. All members are singletons living for the process
// lifetime; the request handlers themselves are stateless.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *infraCache.RedisClient
	Cache  cache.Cache

	// Repositories
	AuthorRepo    author.Repository
	PublisherRepo publisher.Repository
	BookRepo      book.Repository

	// Services
	AuthorService    author.Service
	PublisherService publisher.Service
	BookService      book.Service

	// Handlers
	AuthorHandler    *authorHandler.AuthorHandler
	PublisherHandler *publisherHandler.PublisherHandler
	BookHandler      *bookHandler.BookHandler
}

// NewContainer initializes the whole dependency graph, in order:
// config → infrastructure (DB, cache) → repositories → services → handlers.
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing dependencies...")

	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Step 2: PostgreSQL
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := c.DB.EnsureSchema(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Step 3: Redis
	c.Redis = infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = infraCache.NewRedisCache(c.Redis)

	// Step 4: repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)

	// Step 5: services
	c.AuthorService = authorService.NewService(c.AuthorRepo, c.Cache)
	c.PublisherService = publisherService.NewService(c.PublisherRepo, c.Cache)
	c.BookService = bookService.NewService(c.BookRepo, c.AuthorRepo, c.PublisherRepo, c.Cache)

	// Step 6: handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Println("[CONTAINER] All dependencies initialized")
	return c, nil
}

// Cleanup releases infrastructure resources at shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close redis client: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
