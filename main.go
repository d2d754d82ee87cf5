package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"newsdash/config"
	"newsdash/internal/handler"
	"newsdash/internal/model"
	"newsdash/internal/scheduler"
	"newsdash/internal/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	gin.SetMode(cfg.Server.Mode)

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal("Failed to create data dir:", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	db.AutoMigrate(&model.Article{}, &model.Preference{})

	sources := cfg.EnabledSources()

	translator := service.NewTranslatorService(cfg.Translator)
	fetcher := service.NewFetcherService(sources, cfg.Pipeline.FetchTimeoutDuration())
	recency := service.NewRecencyService(cfg.Pipeline.FreshnessWindowDuration(), cfg.Pipeline.GetFallbackCount())
	enricher := service.NewEnricherService(translator, cfg.Pipeline.EnrichTimeoutDuration())
	store := service.NewStoreService(db, cfg.Pipeline.GetSummaryMax())
	pipeline := service.NewPipelineService(fetcher, recency, enricher, translator, store, cfg.Pipeline.GetLoadLimit())
	prefs := service.NewPrefsService(db)
	status := service.NewStatusService(store, cfg.Sources)

	sched := scheduler.NewScheduler(pipeline, cfg.Cron)
	sched.Start()
	defer sched.Stop()

	r := gin.Default()

	h := handler.NewHandler(pipeline, store, prefs, status, cfg.Sources)
	h.SetScheduler(sched)
	h.RegisterRoutes(r)

	log.Printf("Server starting on %s", cfg.GetServerAddress())
	if err := r.Run(cfg.GetServerAddress()); err != nil {
		log.Fatal("Server failed:", err)
	}
}
