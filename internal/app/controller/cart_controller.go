package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrcow/mrcow-backend/internal/app/repository"
	"github.com/mrcow/mrcow-backend/internal/app/service"
	apperrors "github.com/mrcow/mrcow-backend/internal/errors"
	"github.com/mrcow/mrcow-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

type CartController struct {
	cartService     service.CartService
	locationService service.LocationService
	cartRepo        repository.CartRepository
	tipPercentages  []int
}

func NewCartController(
	cartService service.CartService,
	locationService service.LocationService,
	cartRepo repository.CartRepository,
	tipPercentages []int,
) *CartController {
	return &CartController{
		cartService:     cartService,
		locationService: locationService,
		cartRepo:        cartRepo,
		tipPercentages:  tipPercentages,
	}
}

type AddItemRequest struct {
	MenuItemID     string            `json:"menu_item_id" binding:"required"`
	Quantity       int               `json:"quantity" binding:"required,gt=0"`
	Customizations map[string]string `json:"customizations"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

type SetTipRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	IsPercentage bool            `json:"is_percentage"`
}

type SetLocationRequest struct {
	LocationID string `json:"location_id" binding:"required"`
}

// GetCart returns the full cart state
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	summary := ctrl.cartService.Summary()

	response := gin.H{
		"items":           ctrl.cartService.Items(),
		"count":           summary.ItemCount,
		"summary":         summary,
		"tip_percentages": ctrl.tipPercentages,
		"cart": gin.H{
			"subtotal":    summary.Subtotal,
			"tax":         summary.Tax,
			"tip":         summary.Tip,
			"total":       summary.Total,
			"location_id": ctrl.cartService.Location(),
		},
	}
	if location, found := ctrl.cartRepo.SelectedLocation(); found {
		response["location"] = location
	}

	c.JSON(http.StatusOK, response)
}

// GetSummary returns the derived totals only
// GET /api/v1/cart/summary
func (ctrl *CartController) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.cartService.Summary())
}

// AddItem adds a menu item to the cart
// POST /api/v1/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	line, err := ctrl.cartService.AddMenuItem(req.MenuItemID, req.Quantity, req.Customizations)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			log.Warn("Menu item not found for cart", map[string]interface{}{
				"menu_item_id": req.MenuItemID,
			})
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"menu_item_id": req.MenuItemID,
		})
		apperrors.ParseAndRespond(c, err, "cart add")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item":    line,
		"summary": ctrl.cartService.Summary(),
	})
}

// UpdateItem changes a line's quantity; zero or less removes the line
// PUT /api/v1/cart/items/:id
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if err := ctrl.cartService.UpdateQuantity(c.Param("id"), req.Quantity); err != nil {
		log.Error("Failed to update cart item", err, map[string]interface{}{
			"line_item_id": c.Param("id"),
		})
		apperrors.ParseAndRespond(c, err, "cart update")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   ctrl.cartService.Items(),
		"summary": ctrl.cartService.Summary(),
	})
}

// RemoveItem deletes a line from the cart
// DELETE /api/v1/cart/items/:id
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	ctrl.cartService.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"items":   ctrl.cartService.Items(),
		"summary": ctrl.cartService.Summary(),
	})
}

// SetTip sets an absolute or percentage tip
// PUT /api/v1/cart/tip
func (ctrl *CartController) SetTip(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SetTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid tip request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if err := ctrl.cartService.SetTip(req.Amount, req.IsPercentage); err != nil {
		if errors.Is(err, service.ErrInvalidTip) {
			apperrors.BadRequest(c, apperrors.CartInvalidTip, "Tip cannot be negative")
			return
		}
		log.Error("Failed to set tip", err, nil)
		apperrors.ParseAndRespond(c, err, "cart update")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": ctrl.cartService.Summary(),
	})
}

// SetLocation selects the pickup location for the cart
// PUT /api/v1/cart/location
func (ctrl *CartController) SetLocation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid location request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	location, err := ctrl.locationService.GetLocationByID(req.LocationID)
	if err != nil {
		log.Warn("Unknown pickup location", map[string]interface{}{
			"location_id": req.LocationID,
		})
		apperrors.NotFound(c, apperrors.LocationNotFound, "Location not found")
		return
	}

	ctrl.cartService.SetLocation(location.ID)
	ctrl.cartRepo.SaveSelectedLocation(location)

	c.JSON(http.StatusOK, gin.H{
		"location": location,
		"summary":  ctrl.cartService.Summary(),
	})
}

// ClearCart empties the cart, keeping the selected location
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cartService.Clear()

	c.JSON(http.StatusOK, gin.H{
		"summary": ctrl.cartService.Summary(),
	})
}
