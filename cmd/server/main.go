package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework
	emw "github.com/labstack/echo/v4/middleware"

	"github.com/jevliu/learning-platform/internal/config"     // Internal config loader
	"github.com/jevliu/learning-platform/internal/database"   // MySQL pool constructor
	"github.com/jevliu/learning-platform/internal/handler"    // HTTP handlers
	"github.com/jevliu/learning-platform/internal/middleware" // JWT, role, cache and rate limit middleware
	"github.com/jevliu/learning-platform/internal/queue"      // Background consumers for upload events
	"github.com/jevliu/learning-platform/internal/repository" // Data access layer
	"github.com/jevliu/learning-platform/internal/router"     // Route registration
	"github.com/jevliu/learning-platform/internal/storage"    // Local file store
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBPoolSize)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	files, err := storage.New(cfg.UploadDir, cfg.AllowedTypes, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	// Repositories and handlers. Everything is constructed here and handed
	// down; no package-level state.
	users := repository.NewUserRepo(db)
	auth := handler.NewAuthHandler(cfg, users)
	content := handler.NewContentHandler(
		repository.NewClassRepo(db),
		repository.NewMaterialRepo(db),
		repository.NewVideoRepo(db),
		repository.NewNoteRepo(db),
		files,
	)

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(emw.Logger())  // request log line per request
	e.Use(emw.Recover()) // panics become 500 responses instead of killing the process
	e.Use(emw.CORSWithConfig(emw.CORSConfig{
		AllowOrigins: []string{cfg.FrontendOrigin},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)                                           // health check
	router.RegisterStatic(e, cfg.UploadDir)                            // read-only file downloads
	router.RegisterAuth(e, auth, limit)                                // register/login
	router.RegisterContent(e, content, cfg.JWTSecret, cfg.MaxUploadBytes, cache) // class content

	// Background consumers: upload audit log and orphan file sweeper. Both
	// run reconnect loops and never take the server down.
	go func() {
		if err := queue.StartUploadConsumer(); err != nil {
			log.Printf("upload consumer stopped: %v", err)
		}
	}()
	go func() {
		if err := queue.StartOrphanSweeper(cfg.UploadDir); err != nil {
			log.Printf("orphan sweeper stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
