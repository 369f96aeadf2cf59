package main

import (
	"fmt"
	"log"
	"os"

	"github.com/carlosryandeveloper/AgroTrilha/internal/audit"
	"github.com/carlosryandeveloper/AgroTrilha/internal/config"
	"github.com/carlosryandeveloper/AgroTrilha/internal/database"
	"github.com/carlosryandeveloper/AgroTrilha/internal/handler"
	"github.com/carlosryandeveloper/AgroTrilha/internal/notify"
	"github.com/carlosryandeveloper/AgroTrilha/internal/router"
	"github.com/carlosryandeveloper/AgroTrilha/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database (retries while the container comes up)
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Audit event fan-out
	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		notifier = notify.NewRedisNotifier(rdb, cfg.Redis.AuditChannel)
	}
	recorder := audit.NewRecorder(notifier)

	// Services
	userService := service.NewUserService(db, recorder)
	templateService := service.NewTemplateService(db, recorder)
	projectService := service.NewProjectService(db, recorder)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	router.Setup(r, router.Deps{
		UserHandler:     handler.NewUserHandler(userService),
		TemplateHandler: handler.NewTemplateHandler(templateService),
		ProjectHandler:  handler.NewProjectHandler(projectService),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
