package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/controllers"
	"github.com/mainagideon/storefront-api/middlewares"
)

func UserRoutes(server *gin.Engine) {
	admin := server.Group("/api/users", middlewares.RequireAuth(), middlewares.RequireAdminOrStaff())
	{
		admin.GET("", controllers.GetUsers)
		admin.PATCH("/:id", controllers.UpdateUserLevel)
	}
}
