package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/controllers"
	"github.com/mainagideon/storefront-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	api := server.Group("/api", middlewares.RequireAuth())
	{
		api.POST("/checkout", controllers.Checkout)
		api.GET("/orders", middlewares.RequireAdminOrStaff(), controllers.GetOrders)
		api.GET("/orders/:id", controllers.GetOrdersByUser)
		api.GET("/orders/:id/items", controllers.GetOrderItems)
		api.PATCH("/orders/:id", middlewares.RequireAdminOrStaff(), controllers.UpdateOrderStatus)
	}
}
