package main

import (
	"fmt"
	"log"

	"github.com/chloeyeo/wswg-backend/configs"
	"github.com/chloeyeo/wswg-backend/middlewares"
	"github.com/chloeyeo/wswg-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded review images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
