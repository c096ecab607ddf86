package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/mainagideon/storefront-api/initializers"
	"github.com/mainagideon/storefront-api/middlewares"
	"github.com/mainagideon/storefront-api/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupTestDB swaps an in-memory sqlite database into the global handle
// used by the handlers. One connection keeps every query on the same
// in-memory instance.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
		&models.Page{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	initializers.DB = db
	t.Cleanup(func() { sqlDB.Close() })
}

// newTestRouter wires the handlers exactly as main does, minus CORS.
func newTestRouter() *gin.Engine {
	router := gin.New()

	router.POST("/api/register", Register)
	router.POST("/api/login", Login)

	router.GET("/api/items", GetItems)
	router.GET("/api/items/:id", GetItem)
	itemAdmin := router.Group("/api/items", middlewares.RequireAuth(), middlewares.RequireAdminOrStaff())
	itemAdmin.POST("", CreateItem)
	itemAdmin.PUT("/:id", UpdateItem)
	itemAdmin.DELETE("/:id", DeleteItem)

	router.GET("/api/categories", GetCategories)
	categoryAdmin := router.Group("/api/categories", middlewares.RequireAuth(), middlewares.RequireAdminOrStaff())
	categoryAdmin.POST("", CreateCategory)
	categoryAdmin.PUT("/:id", UpdateCategory)
	categoryAdmin.DELETE("/:id", DeleteCategory)

	api := router.Group("/api", middlewares.RequireAuth())
	api.POST("/checkout", Checkout)
	api.GET("/orders", middlewares.RequireAdminOrStaff(), GetOrders)
	api.GET("/orders/:id", GetOrdersByUser)
	api.GET("/orders/:id/items", GetOrderItems)
	api.PATCH("/orders/:id", middlewares.RequireAdminOrStaff(), UpdateOrderStatus)

	router.GET("/api/pages", GetPages)
	router.GET("/api/pages/:id", GetPage)
	pageAdmin := router.Group("/api/pages", middlewares.RequireAuth(), middlewares.RequireAdminOrStaff())
	pageAdmin.POST("", CreatePage)
	pageAdmin.PUT("/:id", UpdatePage)
	pageAdmin.DELETE("/:id", DeletePage)

	userAdmin := router.Group("/api/users", middlewares.RequireAuth(), middlewares.RequireAdminOrStaff())
	userAdmin.GET("", GetUsers)
	userAdmin.PATCH("/:id", UpdateUserLevel)

	return router
}

// createTestUser inserts a user with a known password and returns it
// alongside a signed token.
func createTestUser(t *testing.T, email string, level int) (models.User, string) {
	t.Helper()

	hashed, err := hashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  hashed,
		Level:     level,
	}
	if err := initializers.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := generateJWT(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func checkoutBody(items []map[string]any) map[string]any {
	return map[string]any{
		"firstName": "Jane",
		"lastName":  "Doe",
		"address1":  "12 Main St",
		"address2":  "",
		"country":   "KE",
		"state":     "Nairobi",
		"zip":       "00100",
		"payment":   "cod",
		"items":     items,
	}
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()

	var count int64
	if err := initializers.DB.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
