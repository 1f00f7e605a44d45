package main

import (
	"context"
	"log"

	"community-events/config"
	"community-events/internal/cache"
	"community-events/internal/database"
	"community-events/internal/handler"
	"community-events/internal/readmodel"
	"community-events/internal/repository"
	"community-events/internal/service"
	"community-events/internal/session"
	"community-events/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	snapshotCache, err := cache.NewSQLiteSnapshotCache(cfg.Cache.Path)
	if err != nil {
		log.Fatalf("Failed to initialize snapshot cache: %v", err)
	}
	defer snapshotCache.Close()

	// 活動 read-model: hydrate 本機快取 + 訂閱遠端快照，與 server 同生共死
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventStore := store.NewPostgresEventStore(pool, rdb)
	events := readmodel.NewEventReadModel(eventStore, snapshotCache)
	if err := events.Start(ctx); err != nil {
		log.Fatalf("Failed to start event read model: %v", err)
	}

	userRepo := repository.NewUserRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)

	eventService := service.NewEventService(events, eventStore)
	commentService := service.NewCommentService(commentRepo, events)
	userService := service.NewUserService(userRepo)

	tokens := session.NewTokenManager(cfg.Auth.JWTSecret)
	auth := session.Middleware(tokens)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewUserHandler(userService, tokens).RegisterRoutes(router, auth)
	handler.NewEventHandler(eventService).RegisterRoutes(router, auth)
	handler.NewCommentHandler(commentService).RegisterRoutes(router, auth)

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
