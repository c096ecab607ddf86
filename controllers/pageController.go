package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mainagideon/storefront-api/initializers"
	"github.com/mainagideon/storefront-api/models"
)

type pageData struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func CreatePage(ctx *gin.Context) {
	var data pageData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	page := models.Page{Title: data.Title, Content: data.Content}
	if result := initializers.DB.Create(&page); result.Error != nil {
		log.Println("Page creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to insert page")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Page created",
		"id":      page.ID,
	})
}

func GetPages(ctx *gin.Context) {
	var pages []models.Page
	if result := initializers.DB.Order("created_at desc").Find(&pages); result.Error != nil {
		log.Println("Error fetching pages:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch pages")
		return
	}

	ctx.JSON(http.StatusOK, pages)
}

func GetPage(ctx *gin.Context) {
	pageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid page ID")
		return
	}

	var page models.Page
	result := initializers.DB.First(&page, pageId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Page not found")
		} else {
			log.Println("Error fetching page:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch page")
		}
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func UpdatePage(ctx *gin.Context) {
	pageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid page ID")
		return
	}

	var data pageData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	result := initializers.DB.Model(&models.Page{}).
		Where("id = ?", pageId).
		Updates(map[string]any{
			"title":   data.Title,
			"content": data.Content,
		})
	if result.Error != nil {
		log.Println("Error updating page:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update page")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Page not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Page updated successfully"})
}

func DeletePage(ctx *gin.Context) {
	pageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid page ID")
		return
	}

	result := initializers.DB.Delete(&models.Page{}, pageId)
	if result.Error != nil {
		log.Println("Error deleting page:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete page")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Page not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Page deleted successfully"})
}
