package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrcow/mrcow-backend/internal/app/model"
	"github.com/mrcow/mrcow-backend/internal/app/repository"
	apperrors "github.com/mrcow/mrcow-backend/internal/errors"
)

// MenuController serves the static menu catalog.
type MenuController struct {
	menuRepo repository.MenuRepository
}

func NewMenuController(menuRepo repository.MenuRepository) *MenuController {
	return &MenuController{
		menuRepo: menuRepo,
	}
}

// GetAllItems lists the catalog, optionally filtered by category
// GET /api/v1/menu?category=corndogs
func (ctrl *MenuController) GetAllItems(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		items := ctrl.menuRepo.FindAll()
		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"count": len(items),
		})
		return
	}

	if _, ok := model.CategoryNames[model.MenuCategory(category)]; !ok {
		apperrors.BadRequest(c, apperrors.MenuInvalidCategory, "Unknown menu category")
		return
	}

	items := ctrl.menuRepo.FindByCategory(model.MenuCategory(category))
	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"count":    len(items),
		"category": category,
	})
}

// GetCategories lists category slugs and display names
// GET /api/v1/menu/categories
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": model.CategoryNames,
	})
}

// GetPopularItems lists the items flagged as popular
// GET /api/v1/menu/popular
func (ctrl *MenuController) GetPopularItems(c *gin.Context) {
	items := ctrl.menuRepo.FindPopular()
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetItemByID returns a single menu item
// GET /api/v1/menu/:id
func (ctrl *MenuController) GetItemByID(c *gin.Context) {
	item, found := ctrl.menuRepo.FindByID(c.Param("id"))
	if !found {
		apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item": item,
	})
}
