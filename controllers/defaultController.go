package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Storefront API.

The following are the endpoints for this API:

AUTH
- POST "/api/register" - Create user account
- POST "/api/login" - Access user account

CATALOG
- GET "/api/items" - Get all items
- GET "/api/items/:id" - Get item by ID
- POST "/api/items" - Create item (admin/staff)
- PUT "/api/items/:id" - Update item (admin/staff)
- DELETE "/api/items/:id" - Delete item (admin/staff)
- GET "/api/categories" - Get all categories
- POST "/api/categories" - Create category (admin/staff)
- PUT "/api/categories/:id" - Update category (admin/staff)
- DELETE "/api/categories/:id" - Delete category (admin/staff)

ORDERS
- POST "/api/checkout" - Place an order
- GET "/api/orders" - Retrieve all orders (admin/staff)
- GET "/api/orders/:id" - Get orders for a specific user
- GET "/api/orders/:id/items" - Get line items for an order
- PATCH "/api/orders/:id" - Update order status (admin/staff)

PAGES
- GET "/api/pages" - Get all pages
- GET "/api/pages/:id" - Get page by ID
- POST "/api/pages" - Create page (admin/staff)
- PUT "/api/pages/:id" - Update page (admin/staff)
- DELETE "/api/pages/:id" - Delete page (admin/staff)

USERS
- GET "/api/users" - List users (admin/staff)
- PATCH "/api/users/:id" - Update user role level (admin/staff)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
