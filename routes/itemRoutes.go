package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/controllers"
	"github.com/mainagideon/storefront-api/middlewares"
)

func ItemRoutes(server *gin.Engine) {
	server.GET("/api/items", controllers.GetItems)
	server.GET("/api/items/:id", controllers.GetItem)

	admin := server.Group("/api/items", middlewares.RequireAuth(), middlewares.RequireAdminOrStaff())
	{
		admin.POST("", controllers.CreateItem)
		admin.PUT("/:id", controllers.UpdateItem)
		admin.DELETE("/:id", controllers.DeleteItem)
	}
}
