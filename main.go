package main

import (
	"context"
	"log"
	"os"

	"medwebcare/config/cache"
	"medwebcare/config/db"
	"medwebcare/jobs"
	"medwebcare/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = start
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}
	startServer()
}

func buildEngine() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r)
	return r
}

func start() {
	if err := db.Connect(); err != nil {
		log.Fatal("Unable to connect to mongo:", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Println("Error disconnecting mongo:", err)
		}
	}()
	cache.Connect()

	if !isTest {
		jobs.StartDailyScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := buildEngine().Run(":" + port); err != nil {
		log.Println("Server stopped:", err)
	}
}
