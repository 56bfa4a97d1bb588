package main

import (
	"log"
	"os"

	"github.com/kthiza/protein-tracking-app/config"
	"github.com/kthiza/protein-tracking-app/controllers"
	"github.com/kthiza/protein-tracking-app/pipeline"
	"github.com/kthiza/protein-tracking-app/routes"
	"github.com/kthiza/protein-tracking-app/services"
)

func main() {
	config.InitDB()

	tables, err := config.LoadTables()
	if err != nil {
		log.Fatalf("Failed to load food tables: %v", err)
	}
	estimator, err := pipeline.NewEstimator(tables)
	if err != nil {
		log.Fatalf("Food table validation failed: %v", err)
	}

	vision, err := services.NewVisionService()
	if err != nil {
		log.Fatalf("Failed to initialize vision client: %v", err)
	}

	controllers.Init(estimator, vision, services.NewMealService())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
