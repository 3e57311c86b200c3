package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"content-planner/api/router"
	"content-planner/config"
	"content-planner/ideagen"
	"content-planner/logger"
	"content-planner/planner"
	"content-planner/store"
)

// @title           Content Planner API
// @version         1.0
// @description     API for generating and downloading AI content calendars
// @BasePath        /api/v1
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")
	cfg := config.GetConfig()

	source, err := ideagen.New(cfg.LLM.Provider, cfg.LLM.ModelName)
	if err != nil {
		// Plans can still be generated from deterministic defaults.
		logger.Log.Warnf("idea source unavailable, AI generation disabled: %v", err)
		source = nil
	}

	svc := planner.NewService(source)
	plans := store.NewPlanStore()
	r := router.New(svc, plans)

	handler := cors.New(cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	}).Handler(r)

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
