package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mainagideon/storefront-api/initializers"
	"github.com/mainagideon/storefront-api/middlewares"
	"github.com/mainagideon/storefront-api/models"
	"github.com/mainagideon/storefront-api/utils"
)

// checkoutTimeout bounds the transactional write; a timed-out checkout
// rolls back like any other failure.
const checkoutTimeout = 10 * time.Second

// orderTotal sums the captured cart prices. The snapshot price is
// authoritative at checkout; the catalog is not re-read.
func orderTotal(items []models.CheckoutItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}

// Checkout persists one order header plus one line item per cart entry
// inside a single transaction. Either all rows commit together or none
// do; an order is never visible without its items.
func Checkout(ctx *gin.Context) {
	var checkoutData models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&checkoutData); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(checkoutData.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid or missing items array")
		return
	}

	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), checkoutTimeout)
	defer cancel()

	order := models.Order{
		UserID:    userId,
		FirstName: checkoutData.FirstName,
		LastName:  checkoutData.LastName,
		Address1:  checkoutData.Address1,
		Address2:  checkoutData.Address2,
		Country:   checkoutData.Country,
		State:     checkoutData.State,
		Zip:       checkoutData.Zip,
		Payment:   checkoutData.Payment,
		Total:     orderTotal(checkoutData.Items),
		Status:    models.StatusPending,
	}

	tx := initializers.DB.WithContext(timeoutCtx).Begin()
	if tx.Error != nil {
		log.Println("Failed to begin checkout transaction:", tx.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to process order")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to process order")
		return
	}

	for _, item := range checkoutData.Items {
		orderItem := models.OrderItem{
			OrderID:  int(order.ID),
			ItemID:   item.ID,
			ItemName: item.Name,
			Price:    item.Price,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			log.Println("Order item creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to process order")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Checkout commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to process order")
		return
	}

	sendOrderConfirmation(userId, order)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"orderId": order.ID,
	})
}

// sendOrderConfirmation emails the buyer after a committed checkout.
// Best effort: failures are logged, never surfaced to the caller.
func sendOrderConfirmation(userId int, order models.Order) {
	if os.Getenv("FROM_EMAIL") == "" {
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userId).Error; err != nil {
		log.Println("Order confirmation skipped, user lookup failed:", err)
		return
	}
	if err := utils.SendOrderConfirmationEmail(user, order); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}
}

// GetOrdersByUser returns a user's orders, newest first. Customers may
// only read their own; admin and staff may read anyone's.
func GetOrdersByUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	callerId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}
	callerLevel, _ := middlewares.UserLevel(ctx)
	if callerId != userId && callerLevel != models.LevelAdmin && callerLevel != models.LevelStaff {
		sendErrorResponse(ctx, http.StatusForbidden, "Forbidden")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println("Error fetching orders for user:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrders returns every order, newest first. Admin/staff only.
func GetOrders(ctx *gin.Context) {
	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	result := initializers.DB.Order("created_at " + sortOrder).Find(&orders)
	if result.Error != nil {
		log.Println("Error fetching all orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrderItems returns the denormalized line items for one order. The
// catalog join is LEFT so lines survive item deletion.
func GetOrderItems(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var items []models.OrderItemDetail
	result := initializers.DB.
		Table("order_items").
		Select("order_items.item_name, order_items.price, items.image").
		Joins("LEFT JOIN items ON items.id = order_items.item_id").
		Where("order_items.order_id = ?", orderId).
		Scan(&items)
	if result.Error != nil {
		log.Println("Error fetching order items:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order items")
		return
	}
	if items == nil {
		items = []models.OrderItemDetail{}
	}

	ctx.JSON(http.StatusOK, items)
}

// UpdateOrderStatus moves an order to another member of the closed
// status set. Unknown statuses are rejected, unknown orders are a 404,
// distinct from a store failure.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !models.IsValidStatus(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status: "+orderStatusData.Status)
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	result := initializers.DB.Model(&models.Order{}).
		Where("id = ?", orderId).
		Update("status", orderStatusData.Status)
	if result.Error != nil {
		log.Println("Error updating order status:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
	})
}
