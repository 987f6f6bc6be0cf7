package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/swimdesk/swimdesk-api/internal/handler"
	appMiddleware "github.com/swimdesk/swimdesk-api/internal/middleware"
	"github.com/swimdesk/swimdesk-api/internal/roster"
	"github.com/swimdesk/swimdesk-api/internal/service"
	"github.com/swimdesk/swimdesk-api/pkg/config"
	"github.com/swimdesk/swimdesk-api/pkg/logger"
	corsmiddleware "github.com/swimdesk/swimdesk-api/pkg/middleware/cors"
	reqidmiddleware "github.com/swimdesk/swimdesk-api/pkg/middleware/requestid"
)

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

	instructors, err := roster.Load(cfg.Scheduler.RosterPath)
	if err != nil {
		logr.Sugar().Fatalw("failed to load instructor roster", "error", err)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	scheduleSvc := service.NewScheduleService(instructors, validator.New(), logr, metricsSvc, service.ScheduleConfig{
		MaxStudents: cfg.Scheduler.MaxStudents,
	})
	studentHandler := handler.NewStudentHandler(scheduleSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(appMiddleware.Metrics(metricsSvc))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsSvc != nil {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/students", studentHandler.Submit)
	api.GET("/students", studentHandler.List)
	api.GET("/students/count", studentHandler.Count)
	api.POST("/schedule", scheduleHandler.Run)
	api.GET("/schedule/latest", scheduleHandler.Latest)
	api.POST("/reset", scheduleHandler.Reset)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "instructors", len(instructors))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
