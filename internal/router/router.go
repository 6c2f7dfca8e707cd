package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mrcow/mrcow-backend/config"
	"github.com/mrcow/mrcow-backend/internal/app/controller"
	"github.com/mrcow/mrcow-backend/internal/middleware"
)

type Router struct {
	cartController     *controller.CartController
	menuController     *controller.MenuController
	locationController *controller.LocationController
	wsController       *controller.WSController
	config             *config.Config
}

func NewRouter(
	cartController *controller.CartController,
	menuController *controller.MenuController,
	locationController *controller.LocationController,
	wsController *controller.WSController,
	cfg *config.Config,
) *Router {
	return &Router{
		cartController:     cartController,
		menuController:     menuController,
		locationController: locationController,
		wsController:       wsController,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "MR COW API is running",
		})
	})

	router.GET("/ws", r.wsController.Connect)

	v1 := router.Group("/api/v1")
	{
		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.GET("/summary", r.cartController.GetSummary)
			cart.POST("/items", r.cartController.AddItem)
			cart.PUT("/items/:id", r.cartController.UpdateItem)
			cart.DELETE("/items/:id", r.cartController.RemoveItem)
			cart.PUT("/tip", r.cartController.SetTip)
			cart.PUT("/location", r.cartController.SetLocation)
			cart.DELETE("", r.cartController.ClearCart)
		}

		menu := v1.Group("/menu")
		{
			menu.GET("", r.menuController.GetAllItems)
			menu.GET("/categories", r.menuController.GetCategories)
			menu.GET("/popular", r.menuController.GetPopularItems)
			menu.GET("/:id", r.menuController.GetItemByID)
		}

		locations := v1.Group("/locations")
		{
			locations.GET("", r.locationController.GetAllLocations)
			locations.GET("/nearest", r.locationController.GetNearestLocations)
			locations.GET("/search", r.locationController.SearchLocations)
			locations.GET("/:id", r.locationController.GetLocationByID)
			locations.GET("/:id/hours", r.locationController.GetLocationHours)
			locations.GET("/:id/open", r.locationController.GetLocationOpen)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
