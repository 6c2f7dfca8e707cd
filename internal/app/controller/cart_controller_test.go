package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mrcow/mrcow-backend/internal/app/repository"
	"github.com/mrcow/mrcow-backend/internal/app/service"
	"github.com/mrcow/mrcow-backend/internal/notifier"
	"github.com/mrcow/mrcow-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartTestEnv struct {
	router      *gin.Engine
	cartService service.CartService
}

func setupCartControllerTest(t *testing.T) *cartTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cartRepo := repository.NewCartRepository(store)
	menuRepo := repository.NewMenuRepository()
	locationRepo := repository.NewLocationRepository()

	cartService := service.NewCartService(cartRepo, menuRepo, service.NewPricer(0.0875), notifier.New())
	locationService := service.NewLocationService(locationRepo, nil)

	ctrl := NewCartController(cartService, locationService, cartRepo, []int{15, 18, 20, 25})

	router := gin.New()
	router.GET("/api/v1/cart", ctrl.GetCart)
	router.GET("/api/v1/cart/summary", ctrl.GetSummary)
	router.POST("/api/v1/cart/items", ctrl.AddItem)
	router.PUT("/api/v1/cart/items/:id", ctrl.UpdateItem)
	router.DELETE("/api/v1/cart/items/:id", ctrl.RemoveItem)
	router.PUT("/api/v1/cart/tip", ctrl.SetTip)
	router.PUT("/api/v1/cart/location", ctrl.SetLocation)
	router.DELETE("/api/v1/cart", ctrl.ClearCart)

	return &cartTestEnv{router: router, cartService: cartService}
}

func (env *cartTestEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCartController_GetCart_Empty(t *testing.T) {
	env := setupCartControllerTest(t)

	w := env.do(t, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["count"])

	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, true, summary["is_empty"])
	assert.Equal(t, "$0.00", summary["formatted_total"])

	tips := body["tip_percentages"].([]interface{})
	assert.Equal(t, []interface{}{float64(15), float64(18), float64(20), float64(25)}, tips)
}

func TestCartController_AddItem(t *testing.T) {
	env := setupCartControllerTest(t)

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"menu_item_id": "mr-cow-classic",
		"quantity":     2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	item := body["item"].(map[string]interface{})
	assert.Equal(t, "Mr. Cow Classic", item["name"])

	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, float64(2), summary["item_count"])
	assert.Equal(t, "$11.96", summary["formatted_total"])
}

func TestCartController_AddItem_MenuItemNotFound(t *testing.T) {
	env := setupCartControllerTest(t)

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"menu_item_id": "ghost-dog",
		"quantity":     1,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "MENU_ITEM_NOT_FOUND", body["error"])
}

func TestCartController_AddItem_InvalidBody(t *testing.T) {
	env := setupCartControllerTest(t)

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"menu_item_id": "mr-cow-classic",
		"quantity":     0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartController_UpdateItem(t *testing.T) {
	env := setupCartControllerTest(t)

	line, err := env.cartService.AddMenuItem("mr-cow-classic", 1, nil)
	require.NoError(t, err)

	w := env.do(t, http.MethodPut, "/api/v1/cart/items/"+line.ID, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 3, env.cartService.ItemCount())
}

func TestCartController_UpdateItem_ZeroRemoves(t *testing.T) {
	env := setupCartControllerTest(t)

	line, err := env.cartService.AddMenuItem("mr-cow-classic", 2, nil)
	require.NoError(t, err)

	w := env.do(t, http.MethodPut, "/api/v1/cart/items/"+line.ID, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, env.cartService.IsEmpty())
}

func TestCartController_RemoveItem(t *testing.T) {
	env := setupCartControllerTest(t)

	line, err := env.cartService.AddMenuItem("tteokbokki", 1, nil)
	require.NoError(t, err)

	w := env.do(t, http.MethodDelete, "/api/v1/cart/items/"+line.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, env.cartService.IsEmpty())
}

func TestCartController_SetTip(t *testing.T) {
	env := setupCartControllerTest(t)

	_, err := env.cartService.AddMenuItem("mr-cow-classic", 2, nil)
	require.NoError(t, err)

	w := env.do(t, http.MethodPut, "/api/v1/cart/tip", gin.H{
		"amount":        "18",
		"is_percentage": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, "$13.94", summary["formatted_total"])
}

func TestCartController_SetTip_NegativeRejected(t *testing.T) {
	env := setupCartControllerTest(t)

	w := env.do(t, http.MethodPut, "/api/v1/cart/tip", gin.H{
		"amount":        "-1",
		"is_percentage": false,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "CART_INVALID_TIP", body["error"])
}

func TestCartController_SetLocation(t *testing.T) {
	env := setupCartControllerTest(t)

	w := env.do(t, http.MethodPut, "/api/v1/cart/location", gin.H{
		"location_id": "aiea-pearlridge",
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "aiea-pearlridge", env.cartService.Location())

	// Selected location is echoed back on subsequent cart reads
	w = env.do(t, http.MethodGet, "/api/v1/cart", nil)
	body := decodeBody(t, w)
	location := body["location"].(map[string]interface{})
	assert.Equal(t, "aiea-pearlridge", location["id"])
}

func TestCartController_SetLocation_Unknown(t *testing.T) {
	env := setupCartControllerTest(t)

	w := env.do(t, http.MethodPut, "/api/v1/cart/location", gin.H{
		"location_id": "narnia",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "LOCATION_NOT_FOUND", body["error"])
}

func TestCartController_ClearCart(t *testing.T) {
	env := setupCartControllerTest(t)

	_, err := env.cartService.AddMenuItem("mr-cow-classic", 2, nil)
	require.NoError(t, err)
	env.cartService.SetLocation("aiea-pearlridge")

	w := env.do(t, http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, env.cartService.IsEmpty())
	assert.Equal(t, "aiea-pearlridge", env.cartService.Location())
}
