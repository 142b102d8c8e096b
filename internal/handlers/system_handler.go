package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finsight/internal/logger"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the banner, health check and unknown routes.
type SystemHandler struct {
	port   string
	env    string
	db     Pinger
	routes []string
}

// NewSystemHandler creates a new SystemHandler. routes is listed in the
// banner and in 404 responses.
func NewSystemHandler(port, env string, db Pinger, routes []string) *SystemHandler {
	return &SystemHandler{port: port, env: env, db: db, routes: routes}
}

// Root handles the service banner
// @Summary     Service banner
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]interface{} "Banner"
// @Router      / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Expense Tracker API is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      h.port,
		"cors":      "enabled",
		"routes":    h.routes,
	})
}

// Health handles the health check
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]interface{} "Healthy"
// @Failure     503 {object} map[string]interface{} "Database unreachable"
// @Router      /api/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	status, code, database := "healthy", http.StatusOK, "connected"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			logger.Get().Warnw("health check database ping failed", "error", err)
			status, code, database = "unhealthy", http.StatusServiceUnavailable, "unreachable"
		}
	}

	c.JSON(code, gin.H{
		"status":      status,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"port":        h.port,
		"environment": h.env,
		"database":    database,
	})
}

// NotFound handles unknown routes.
func (h *SystemHandler) NotFound(c *gin.Context) {
	logger.Get().Infow("route not found", "method", c.Request.Method, "path", c.Request.URL.Path)
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ROUTE_NOT_FOUND",
			"message": "Route " + c.Request.Method + " " + c.Request.URL.Path + " not found",
		},
		"availableRoutes": h.routes,
	})
}
