package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/controllers"
)

func AuthRoutes(server *gin.Engine) {
	api := server.Group("/api")
	{
		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
	}
}
