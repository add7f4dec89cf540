package main

import (
	"log"

	"gpa-tracker/internal/app"
	"gpa-tracker/internal/config"
)

func main() {
	cfg := config.Load()

	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
