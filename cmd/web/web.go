package main

import (
	"flag"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-be/catalog"
	"github.com/skillswap/skillswap-be/config"
	"github.com/skillswap/skillswap-be/db/mysql"
	"github.com/skillswap/skillswap-be/middleware"
	"github.com/skillswap/skillswap-be/routes"
)

func main() {
	configPath := flag.String("config", "skillswap.yml", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("an error occurred while loading config ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config ", err)
	}

	db, err := mysql.GetDatabase(&cfg.DB)
	if err != nil {
		log.Fatal("Received err when attempting to connect to DB ", err)
	}
	defer db.Close()

	store := catalog.NewStore(catalog.Default)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestId())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.FEOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	routes.AddAuthRoutes(api, db)
	routes.AddChatRoutes(api, db)
	routes.AddCatalogRoutes(api, store)
	routes.AddHealthCheckRoutes(api)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error when attempting to run web server ", err)
	}
}
