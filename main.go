package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/initializers"
	"github.com/mainagideon/storefront-api/middlewares"
	"github.com/mainagideon/storefront-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(middlewares.RequestID())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{initializers.Getenv("FRONTEND_URL", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server.Static("/uploads", "./uploads")

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ItemRoutes(server)
	routes.CategoryRoutes(server)
	routes.OrderRoutes(server)
	routes.PageRoutes(server)
	routes.UserRoutes(server)

	server.Run(":" + initializers.Getenv("PORT", "5000"))
}
