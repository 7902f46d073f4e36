package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Shashankmy/crm/internal/config"
	"github.com/Shashankmy/crm/internal/database"
	"github.com/Shashankmy/crm/internal/domain/lead"
	"github.com/Shashankmy/crm/internal/domain/user"
	"github.com/Shashankmy/crm/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&lead.Lead{}, &user.User{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	leadRepo := lead.NewRepository(db)
	leadService := lead.NewService(leadRepo)
	leadHandler := lead.NewHandler(leadService)

	r := gin.New()
	r.Use(
		gin.Logger(),
		middleware.ErrorLogger(),
		middleware.CORS(),
		middleware.Identity(cfg.UserHeader, cfg.CurrentUser),
	)

	api := r.Group("/api")
	lead.RegisterRoutes(api, leadHandler)

	log.Printf("listening on %s (env=%s)", cfg.Addr, cfg.AppEnv)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
