package controllers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mainagideon/storefront-api/initializers"
	"github.com/mainagideon/storefront-api/models"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// saveItemImage stores an uploaded image under uploads/ and returns its
// relative path, the value served back by the static uploads route.
func saveItemImage(ctx *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	imagePath := filepath.Join("uploads", filename)
	if err := ctx.SaveUploadedFile(file, imagePath); err != nil {
		return "", err
	}
	return imagePath, nil
}

// itemFromForm reads the multipart fields shared by create and update.
func itemFromForm(ctx *gin.Context) (models.Item, error) {
	price, err := decimal.NewFromString(ctx.PostForm("price"))
	if err != nil {
		return models.Item{}, errors.New("invalid price")
	}

	item := models.Item{
		Name:        ctx.PostForm("name"),
		Description: ctx.PostForm("description"),
		Price:       price,
	}
	if item.Name == "" {
		return models.Item{}, errors.New("item name is required")
	}

	if categoryStr := ctx.PostForm("category_id"); categoryStr != "" {
		categoryId, err := strconv.Atoi(categoryStr)
		if err != nil {
			return models.Item{}, errors.New("invalid category_id")
		}
		id := uint(categoryId)
		item.CategoryID = &id
	}
	return item, nil
}

func CreateItem(ctx *gin.Context) {
	item, err := itemFromForm(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid item data", err)
		return
	}

	if file, err := ctx.FormFile("image"); err == nil {
		imagePath, saveErr := saveItemImage(ctx, file)
		if saveErr != nil {
			log.Println("Error saving item image:", saveErr)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to store image", saveErr)
			return
		}
		item.Image = imagePath
	}

	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Item creation error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create item", err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

func GetItems(ctx *gin.Context) {
	var items []models.Item

	query := initializers.DB
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if result := query.Find(&items); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch items", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func GetItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid item ID", err)
		return
	}

	var item models.Item
	result := initializers.DB.First(&item, itemId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// UpdateItem replaces an item's fields; an existing image is kept when
// no new file is uploaded. Historical order lines are untouched by
// catalog edits.
func UpdateItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid item ID", err)
		return
	}

	var existing models.Item
	if result := initializers.DB.First(&existing, itemId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve item", result.Error)
		}
		return
	}

	item, err := itemFromForm(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid item data", err)
		return
	}

	existing.Name = item.Name
	existing.Description = item.Description
	existing.Price = item.Price
	existing.CategoryID = item.CategoryID

	if file, err := ctx.FormFile("image"); err == nil {
		imagePath, saveErr := saveItemImage(ctx, file)
		if saveErr != nil {
			log.Println("Error saving item image:", saveErr)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to store image", saveErr)
			return
		}
		existing.Image = imagePath
	}

	if err := initializers.DB.Save(&existing).Error; err != nil {
		log.Println("Item update error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update item", err)
		return
	}

	ctx.JSON(http.StatusOK, existing)
}

func DeleteItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid item ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Item{}, itemId)
	if result.Error != nil {
		log.Println("Item delete error:", result.Error)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Item not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
