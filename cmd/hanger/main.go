package main

import (
	"log"

	"github.com/kosa-java-team2/Hanger/internal/app"
	"github.com/kosa-java-team2/Hanger/internal/app/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}
}
