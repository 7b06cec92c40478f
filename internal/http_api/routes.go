package http_api

import (
	"github.com/gin-gonic/gin"

	"github.com/core-coin/tokenforge/internal/metrics"
)

// routes sets up the routes for the HTTP server.
func (s *HTTPServer) routes() {
	s.router.GET("/", s.itemsPage)
	s.router.GET("/items", s.itemsPage)
	s.router.GET("/about", s.aboutPage)
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := s.router.Group("/api/v1")
	// Only mutating routes are rate limited; reads and the websocket are not.
	limit := s.limiter.middleware(s.logger)

	api.GET("/items", s.listItems)
	api.POST("/items", limit, s.addItem)
	api.PATCH("/items/:id", limit, s.updateItem)
	api.DELETE("/items/:id", limit, s.deleteItem)

	api.GET("/items/form", s.itemsPage)
	api.POST("/items/form", limit, s.submitItemForm)
	api.POST("/items/form/edit/:id", limit, s.editItem)
	api.DELETE("/items/form/edit", limit, s.cancelEdit)

	api.GET("/token", s.tokenForm)
	api.POST("/token", limit, s.submitToken)
	api.POST("/token/validate", limit, s.validateToken)
	api.POST("/token/image", limit, s.selectImage)
	api.DELETE("/token/image", limit, s.clearImage)
	api.GET("/token/image/:ref", s.imagePreview)

	api.POST("/wallet/connect", limit, s.connectWallet)
	api.POST("/wallet/disconnect", limit, s.disconnectWallet)

	api.GET("/notifications", s.listNotifications)
	api.GET("/notifications/ws", s.streamNotifications)
}
