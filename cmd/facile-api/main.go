package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/facile-ph/enlistment-api/api/swagger"
	"github.com/facile-ph/enlistment-api/internal/catalog"
	"github.com/facile-ph/enlistment-api/internal/handler"
	"github.com/facile-ph/enlistment-api/internal/middleware"
	"github.com/facile-ph/enlistment-api/internal/repository"
	"github.com/facile-ph/enlistment-api/internal/service"
	"github.com/facile-ph/enlistment-api/pkg/cache"
	"github.com/facile-ph/enlistment-api/pkg/config"
	"github.com/facile-ph/enlistment-api/pkg/database"
	"github.com/facile-ph/enlistment-api/pkg/logger"
	corsmiddleware "github.com/facile-ph/enlistment-api/pkg/middleware/cors"
	reqidmiddleware "github.com/facile-ph/enlistment-api/pkg/middleware/requestid"
)

// @title FACILE Enlistment API
// @version 1.0.0
// @description Class schedule catalog, conflict detection and timetable rendering
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	// The Postgres repository stays alive so the readiness probe can
	// cross-check the loaded catalog against the store.
	var sectionRepo *repository.SectionRepository
	var rows []catalog.Row
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, dbErr := database.NewPostgres(cfg.Database)
		if dbErr != nil {
			logr.Sugar().Fatalw("postgres connect failed", "error", dbErr)
		}
		defer db.Close() //nolint:errcheck
		sectionRepo = repository.NewSectionRepository(db)
		rows, err = sectionRepo.ListAll(context.Background())
	case config.CatalogSourceCSV:
		rows, err = catalog.NewCSVLoader(cfg.Catalog.DepartmentsCSV, cfg.Catalog.SchedulesDir, logr).Load()
	default:
		logr.Sugar().Fatalw("unknown catalog source", "source", cfg.Catalog.Source)
	}
	if err != nil {
		logr.Sugar().Fatalw("catalog load failed", "source", cfg.Catalog.Source, "error", err)
	}
	cat := catalog.Build(rows, logr)
	logr.Sugar().Infow("catalog built", "sections", cat.Size(), "departments", len(cat.Departments()))

	var redisClient *redis.Client
	if cfg.Sessions.Enabled || cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("redis connect failed", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
	}

	metrics := service.NewMetricsService()

	var scanCache *repository.CacheRepository
	if cfg.Cache.Enabled {
		scanCache = repository.NewCacheRepository(redisClient, logr)
		// Cached scans from a previous catalog are stale.
		if err := scanCache.DeleteByPattern(context.Background(), "scan:*"); err != nil {
			logr.Warn("scan cache invalidation failed", zap.Error(err))
		}
	}

	catalogService := service.NewCatalogService(cat, logr)
	selectionService := service.NewSelectionService(cat, scanCache, metrics, cfg.Cache.TTL, logr)
	timetableService := service.NewTimetableService(cat, selectionService, logr)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	selectionHandler := handler.NewSelectionHandler(selectionService)
	timetableHandler := handler.NewTimetableHandler(timetableService)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
				return
			}
		}
		if sectionRepo != nil {
			counts, err := sectionRepo.CountByDepartment(ctx)
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "postgres": err.Error()})
				return
			}
			total := 0
			for _, n := range counts {
				total += n
			}
			if total != cat.Size() {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":   "degraded",
					"postgres": fmt.Sprintf("catalog holds %d sections, store holds %d", cat.Size(), total),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/departments", catalogHandler.ListDepartments)
		api.GET("/departments/:dept/subjects", catalogHandler.ListSubjects)
		api.GET("/departments/:dept/subjects/:subject/sections", catalogHandler.ListSections)
		api.GET("/buildings/:room", catalogHandler.Building)

		api.POST("/selections/resolve", selectionHandler.Resolve)
		api.POST("/selections/alternatives", selectionHandler.Alternatives)
		api.POST("/selections/alternatives/export", selectionHandler.ExportAlternatives)
		api.POST("/selections/export", selectionHandler.Export)
		api.POST("/selections/timetable", timetableHandler.Render)
		api.POST("/selections/timetable/export", timetableHandler.Export)

		if cfg.Sessions.Enabled {
			sessionRepo := repository.NewSessionRepository(redisClient, logr)
			sessionService := service.NewSessionService(sessionRepo, selectionService, cfg.Sessions.TTL, logr)
			sessionHandler := handler.NewSessionHandler(sessionService)

			api.POST("/sessions", sessionHandler.Save)
			api.GET("/sessions/:id", sessionHandler.Get)
			api.PUT("/sessions/:id", sessionHandler.Update)
			api.DELETE("/sessions/:id", sessionHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
