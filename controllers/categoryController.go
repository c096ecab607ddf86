package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mainagideon/storefront-api/initializers"
	"github.com/mainagideon/storefront-api/models"
)

type categoryData struct {
	Title string `json:"title"`
}

func CreateCategory(ctx *gin.Context) {
	var data categoryData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if strings.TrimSpace(data.Title) == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category title is required")
		return
	}

	category := models.Category{Title: data.Title}
	if result := initializers.DB.Create(&category); result.Error != nil {
		log.Println("Category creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add category")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Category added successfully",
		"id":      category.ID,
	})
}

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Order("id asc").Find(&categories); result.Error != nil {
		log.Println("Error fetching categories:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var data categoryData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if strings.TrimSpace(data.Title) == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category title is required")
		return
	}

	result := initializers.DB.Model(&models.Category{}).
		Where("id = ?", categoryId).
		Update("title", data.Title)
	if result.Error != nil {
		log.Println("Error updating category:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update category")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory removes a category and clears the reference on its
// items in the same transaction. Items are kept, never cascaded away.
func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	notFound := false
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Item{}).
			Where("category_id = ?", categoryId).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Category{}, categoryId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			notFound = true
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if notFound {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
			return
		}
		log.Println("Error deleting category:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
