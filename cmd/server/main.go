package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"propertychat/internal/config"
	"propertychat/internal/handler"
	"propertychat/internal/middleware"
	"propertychat/internal/model"
	"propertychat/internal/repository"
	"propertychat/internal/service"
	"propertychat/pkg/log"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	defer log.Sync()

	log.Infow("Property chat assistant", "version", Version, "build_time", BuildTime, "git_commit", GitCommit)

	gin.SetMode(cfg.Server.GinMode)
	ctx := context.Background()

	// Property catalog and event log
	var (
		catalog repository.PropertyRepository
		events  repository.EventLog
	)
	if cfg.PostgreSQL.Enabled {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatal("Failed to connect to database", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchema(ctx, cfg.Listing.EmbeddingDimension); err != nil {
			log.Fatal("Failed to prepare schema", err)
		}
		seeded, err := repo.SeedIfEmpty(ctx, repository.DemoProperties())
		if err != nil {
			log.Fatal("Failed to seed catalog", err)
		}
		log.Infow("Connected to PostgreSQL", "seeded", seeded)
		catalog, events = repo, repo
	} else {
		catalog = repository.NewMemoryPropertyRepository(repository.DemoProperties())
		events = repository.LogEventLog{}
		log.Info("PostgreSQL disabled, serving the demo catalog from memory")
	}

	// Session and draft stores
	ttl := time.Duration(cfg.Redis.SessionTTL) * time.Minute
	var (
		sessions repository.Store[model.ChatState]
		drafts   repository.Store[model.ListingDraft]
	)
	if cfg.Redis.Enabled {
		client, err := repository.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", err)
		}
		defer client.Close()

		sessions = repository.NewRedisStore[model.ChatState](client, "chat:session", ttl)
		drafts = repository.NewRedisStore[model.ListingDraft](client, "listing:draft", ttl)
		log.Infow("Connected to Redis", "addr", cfg.Redis.Addr)
	} else {
		sessions = repository.NewMemoryStore[model.ChatState](ttl)
		drafts = repository.NewMemoryStore[model.ListingDraft](ttl)
		log.Info("Redis disabled, sessions are kept in memory")
	}

	// Optional AI criteria extraction for unmatched messages
	var ai service.AIClient
	if cfg.OpenAI.Enabled {
		ai = service.NewOpenAIClient(&cfg.OpenAI)
		log.Infow("OpenAI client initialized", "api_base", cfg.OpenAI.APIBase, "model", cfg.OpenAI.ChatModel)
	} else {
		log.Info("OpenAI disabled, unmatched messages get the fallback reply only")
	}

	// Services
	ranker := service.NewRanker(service.DefaultStyleBonus, service.DefaultAmenityBonus, service.DefaultPriorityBonus)
	properties := service.NewPropertyService(catalog, events, ranker, cfg.Search)
	onboarding := service.NewOnboardingService(drafts, catalog, cfg.Listing)
	chat := service.NewConversationService(
		sessions,
		properties,
		onboarding,
		service.NewIntentMatcher(),
		service.NewResponseGenerator(cfg.Chat.ResponseSelection),
		service.NewSlotExtractor(),
		ai,
		cfg.Chat.MaxMessages,
	)

	// Router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitCSV(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = splitCSV(cfg.Server.AllowedMethods)
	corsConfig.AllowHeaders = splitCSV(cfg.Server.AllowedHeaders)
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "property-chat-assistant",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	handler.RegisterRoutes(router.Group("/api/v1"), handler.Handlers{
		Chat:       handler.NewChatHandler(chat, time.Duration(cfg.Chat.TypingDelayMs)*time.Millisecond),
		Properties: handler.NewPropertyHandler(properties, cfg.Listing.EmbeddingDimension),
		Listings:   handler.NewListingHandler(onboarding),
		Feedback:   handler.NewFeedbackHandler(properties),
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Infow("Starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shut down", err)
	}
	log.Info("Server stopped")
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
