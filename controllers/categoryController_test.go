package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mainagideon/storefront-api/initializers"
	"github.com/mainagideon/storefront-api/models"
)

func TestCreateCategoryRequiresTitle(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	_, adminToken := createTestUser(t, "admin@example.com", models.LevelAdmin)

	rec := doJSON(t, router, http.MethodPost, "/api/categories", adminToken, map[string]any{"title": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank title, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/categories", adminToken, map[string]any{"title": "Apparel"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCategoryMutationRequiresPrivilege(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	_, customerToken := createTestUser(t, "buyer@example.com", models.LevelCustomer)

	rec := doJSON(t, router, http.MethodPost, "/api/categories", customerToken, map[string]any{"title": "Apparel"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/categories", "", map[string]any{"title": "Apparel"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

// Deleting a category clears the reference on its items instead of
// deleting them.
func TestDeleteCategoryNullifiesItems(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	_, adminToken := createTestUser(t, "admin@example.com", models.LevelAdmin)

	category := models.Category{Title: "Apparel"}
	if err := initializers.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	item := models.Item{
		Name:       "Shirt",
		Price:      decimal.RequireFromString("19.99"),
		CategoryID: &category.ID,
	}
	if err := initializers.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Item
	if err := initializers.DB.First(&updated, item.ID).Error; err != nil {
		t.Fatalf("item should survive category deletion: %v", err)
	}
	if updated.CategoryID != nil {
		t.Errorf("item category reference = %v, want nil", *updated.CategoryID)
	}
}

func TestUpdateAndDeleteCategoryNotFound(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	_, adminToken := createTestUser(t, "admin@example.com", models.LevelAdmin)

	rec := doJSON(t, router, http.MethodPut, "/api/categories/42", adminToken, map[string]any{"title": "Renamed"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("update: expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/categories/42", adminToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete: expected 404, got %d", rec.Code)
	}
}
