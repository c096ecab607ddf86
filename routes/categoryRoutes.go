package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/controllers"
	"github.com/mainagideon/storefront-api/middlewares"
)

func CategoryRoutes(server *gin.Engine) {
	server.GET("/api/categories", controllers.GetCategories)

	admin := server.Group("/api/categories", middlewares.RequireAuth(), middlewares.RequireAdminOrStaff())
	{
		admin.POST("", controllers.CreateCategory)
		admin.PUT("/:id", controllers.UpdateCategory)
		admin.DELETE("/:id", controllers.DeleteCategory)
	}
}
