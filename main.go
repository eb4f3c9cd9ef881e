package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gramseva-be/config"
	"gramseva-be/controllers"
	"gramseva-be/gateway"
	"gramseva-be/middlewares"
	"gramseva-be/routes"
	"gramseva-be/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	issueStore := store.NewMongoStore(db)

	// AI assist is advisory: without a key the service runs with the
	// manual-entry paths only.
	var assist gateway.Assist
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		g, err := gateway.NewGeminiAssist(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("AI assist disabled: %v", err)
		} else {
			assist = g
			log.Println("AI assist gateway ready")
		}
	} else {
		log.Println("GEMINI_API_KEY not set, AI assist disabled")
	}

	r := gin.Default()
	r.Use(middlewares.RequestID())

	routes.AuthRoutes(r)
	routes.IssueRoutes(r, controllers.NewIssueController(issueStore, assist))
	routes.EventRoutes(r, controllers.NewEventController(issueStore))
	routes.AssistRoutes(r, controllers.NewAssistController(assist))
	routes.DashboardRoutes(r, controllers.NewDashboardController(issueStore))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
