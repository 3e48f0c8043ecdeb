package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traincoach/internal/api/whoop"
)

// oauthState guards the callback against forged redirects.
const oauthState = "traincoach"

// Handler wires the HTTP layer to the dashboard service and OAuth flow.
type Handler struct {
	service *Service
	auth    *whoop.Authenticator
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(service *Service, auth *whoop.Authenticator) *Handler {
	return &Handler{service: service, auth: auth}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", h.health)

	router.GET("/auth/login", h.login)
	router.GET("/callback", h.callback)

	api := router.Group("/api")
	{
		api.GET("/recommendation", h.recommendation)
		api.GET("/weekly", h.weekly)
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) login(c *gin.Context) {
	c.Redirect(http.StatusFound, h.auth.AuthCodeURL(oauthState))
}

func (h *Handler) callback(c *gin.Context) {
	if c.Query("state") != oauthState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state mismatch"})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}
	if _, err := h.auth.Exchange(c.Request.Context(), code); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	// Fill the cache right away instead of waiting for the next scheduled run.
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "authorized", "warning": "initial refresh failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "authorized"})
}

func (h *Handler) recommendation(c *gin.Context) {
	view := h.service.Cached()
	if view == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no recommendation computed yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recommendation": view.Plan.Today,
		"advice":         view.Advice,
		"workouts":       view.Workouts,
		"refreshed_at":   view.RefreshedAt,
	})
}

func (h *Handler) weekly(c *gin.Context) {
	view := h.service.Cached()
	if view == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no plan computed yet"})
		return
	}
	c.JSON(http.StatusOK, view.Plan)
}
