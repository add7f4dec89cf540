package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gpa-tracker/internal/config"
	"gpa-tracker/internal/controllers"
	"gpa-tracker/internal/logger"
	"gpa-tracker/internal/records"
	"gpa-tracker/internal/server"
	"gpa-tracker/internal/services"
	"gpa-tracker/internal/shutdown"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel, cfg.Debug), cfg.JSONLogs)

	store := records.NewStore(cfg.DataFile, appLogger)
	form := controllers.NewFormController(store, services.NewGPACalculator(), appLogger)
	httpServer := server.New(form, store, appLogger).HTTPServer(cfg.Port)

	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register("http", server.Graceful{Server: httpServer, Timeout: 5 * time.Second})
	shutdownMgr.Listen()

	appLogger.Info("Server", "listening", map[string]interface{}{
		"addr":      httpServer.Addr,
		"data_file": cfg.DataFile,
	})

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server exited with error: %v", err)
	}

	<-shutdownMgr.Completed()
}
