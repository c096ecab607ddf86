package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/controllers"
	"github.com/mainagideon/storefront-api/middlewares"
)

func PageRoutes(server *gin.Engine) {
	server.GET("/api/pages", controllers.GetPages)
	server.GET("/api/pages/:id", controllers.GetPage)

	admin := server.Group("/api/pages", middlewares.RequireAuth(), middlewares.RequireAdminOrStaff())
	{
		admin.POST("", controllers.CreatePage)
		admin.PUT("/:id", controllers.UpdatePage)
		admin.DELETE("/:id", controllers.DeletePage)
	}
}
