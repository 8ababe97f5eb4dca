package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique name per test keeps in-memory DBs isolated while staying
	// shared across pooled connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// setupRouter wires the cart handlers behind a stub auth middleware that
// injects a fixed user id.
func setupRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/cart", GetCartHandler(db))
	r.POST("/cart/add", AddItemHandler(db))
	r.PUT("/cart/items/:itemId", UpdateItemHandler(db))
	r.DELETE("/cart/items/:itemId", RemoveItemHandler(db))
	r.DELETE("/cart/clear", ClearCartHandler(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	product := models.Product{
		Name:     "Air Max 90",
		Price:    129.99,
		Category: "shoes",
		Gender:   "men",
		Image:    "/images/airmax90.png",
		SellerID: 42,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.Cart {
	t.Helper()
	var cart models.Cart
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatalf("failed to decode cart: %v (body: %s)", err, w.Body.String())
	}
	return cart
}

func TestGetCart_LazilyCreates(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1)

	w := doJSON(r, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cart := decodeCart(t, w)
	if cart.UserID != 1 {
		t.Errorf("expected cart for user 1, got %d", cart.UserID)
	}
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart, got %d items", len(cart.Items))
	}

	var count int64
	db.Model(&models.Cart{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one cart row, got %d", count)
	}
}

func TestAddItem_MergesOnProductAndSize(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db)
	r := setupRouter(db, 1)

	w := doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1, "size": "10"})
	if w.Code != http.StatusOK {
		t.Fatalf("first add: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 2, "size": "10"})
	if w.Code != http.StatusOK {
		t.Fatalf("second add: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	cart := decodeCart(t, w)
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("expected merged quantity 3, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].Product.Name != product.Name {
		t.Errorf("expected product expanded on line, got %+v", cart.Items[0].Product)
	}
}

func TestAddItem_DifferentSizeIsSeparateLine(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db)
	r := setupRouter(db, 1)

	doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1, "size": "9"})
	w := doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1, "size": "10"})

	cart := decodeCart(t, w)
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines for different sizes, got %d", len(cart.Items))
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1)

	w := doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": 999, "quantity": 1, "size": "10"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown product, got %d", w.Code)
	}
}

func TestUpdateItem_RejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db)
	r := setupRouter(db, 1)

	w := doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 2, "size": "10"})
	cart := decodeCart(t, w)
	itemID := cart.Items[0].ID

	for _, qty := range []int{0, -1} {
		w := doJSON(r, http.MethodPut, fmt.Sprintf("/cart/items/%d", itemID), gin.H{"quantity": qty})
		if w.Code != http.StatusBadRequest {
			t.Errorf("quantity %d: expected 400, got %d", qty, w.Code)
		}
	}

	// State must be unchanged
	w = doJSON(r, http.MethodGet, "/cart", nil)
	cart = decodeCart(t, w)
	if cart.Items[0].Quantity != 2 {
		t.Errorf("expected quantity unchanged at 2, got %d", cart.Items[0].Quantity)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, 1)

	w := doJSON(r, http.MethodPut, "/cart/items/12345", gin.H{"quantity": 2})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", w.Code)
	}
}

func TestUpdateItem_ChangesQuantity(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db)
	r := setupRouter(db, 1)

	w := doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1, "size": "10"})
	cart := decodeCart(t, w)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/cart/items/%d", cart.Items[0].ID), gin.H{"quantity": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cart = decodeCart(t, w)
	if cart.Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestRemoveItem_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db)
	r := setupRouter(db, 1)

	w := doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1, "size": "10"})
	cart := decodeCart(t, w)
	itemID := cart.Items[0].ID

	// Removing a nonexistent id succeeds and leaves the cart unchanged
	w = doJSON(r, http.MethodDelete, "/cart/items/98765", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for absent item, got %d", w.Code)
	}
	cart = decodeCart(t, w)
	if len(cart.Items) != 1 {
		t.Errorf("expected cart unchanged with 1 item, got %d", len(cart.Items))
	}

	// Real removal
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/cart/items/%d", itemID), nil)
	cart = decodeCart(t, w)
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart after removal, got %d items", len(cart.Items))
	}
}

func TestClearCart(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db)
	r := setupRouter(db, 1)

	doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1, "size": "9"})
	doJSON(r, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1, "size": "10"})

	w := doJSON(r, http.MethodDelete, "/cart/clear", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/cart", nil)
	cart := decodeCart(t, w)
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart after clear, got %d items", len(cart.Items))
	}
}

func TestCarts_AreIsolatedPerUser(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db)

	r1 := setupRouter(db, 1)
	r2 := setupRouter(db, 2)

	doJSON(r1, http.MethodPost, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1, "size": "10"})

	w := doJSON(r2, http.MethodGet, "/cart", nil)
	cart := decodeCart(t, w)
	if len(cart.Items) != 0 {
		t.Errorf("expected user 2's cart to be empty, got %d items", len(cart.Items))
	}
}
