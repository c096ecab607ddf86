package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/initializers"
	"github.com/mainagideon/storefront-api/models"
)

// GetUsers lists users for the admin console. Only the listing fields
// are selected; emails and hashes stay out of it.
func GetUsers(ctx *gin.Context) {
	var users []models.UserSummary
	result := initializers.DB.Model(&models.User{}).
		Select("id, first_name, last_name, level").
		Order("id asc").
		Scan(&users)
	if result.Error != nil {
		log.Println("Failed to fetch users:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// UpdateUserLevel changes a user's role level to another member of the
// known set.
func UpdateUserLevel(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	var levelData struct {
		Level int `json:"level" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&levelData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if !models.IsValidLevel(levelData.Level) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown role level")
		return
	}

	result := initializers.DB.Model(&models.User{}).
		Where("id = ?", userId).
		Update("level", levelData.Level)
	if result.Error != nil {
		log.Println("Failed to update user level:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update user level")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User level updated successfully"})
}
