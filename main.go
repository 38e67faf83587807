package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/rupeshthakur8550/FoodSpace/configs"
	"github.com/rupeshthakur8550/FoodSpace/middlewares"
	"github.com/rupeshthakur8550/FoodSpace/pkg/metrics"
	"github.com/rupeshthakur8550/FoodSpace/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	m := metrics.NewStoreMetrics(nil)
	routes.RegisterRoutes(r, db, m)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
