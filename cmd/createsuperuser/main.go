package main

import (
	"context"
	"flag"
	"log"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/database"
	"github.com/recipebox/backend/internal/service"
)

func main() {
	email := flag.String("email", "", "email address for the superuser")
	password := flag.String("password", "", "password for the superuser")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	user, err := authService.CreateSuperuser(context.Background(), *email, *password)
	if err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}

	log.Printf("Created superuser %s (%s)", user.Email, user.ID)
}
