package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/service"
)

// Options configures the HTTP surface.
type Options struct {
	CookieName   string
	SessionTTL   time.Duration
	SecureCookie bool
	CORSOrigins  []string
	// StaticDir, when set, is served for non-API paths with an index.html
	// fallback for client-side routing.
	StaticDir string
	Logger    *logrus.Logger
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	products service.ProductService
	admins   service.AdminService
	opts     Options
	logger   *logrus.Logger
}

func NewHandler(users service.UserService, products service.ProductService, admins service.AdminService, opts Options) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = "storefront_session"
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &Handler{
		users:    users,
		products: products,
		admins:   admins,
		opts:     opts,
		logger:   opts.Logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))
	router.Use(gin.CustomRecovery(h.recoverPanic))
	if len(h.opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     h.opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(h.loadSession)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
		})

		api.GET("/users", h.listUsers)
		api.GET("/users/:id", h.getUser)
		api.POST("/users", h.createUser)
		api.PUT("/users/:id", h.updateUser)
		api.DELETE("/users/:id", h.deleteUser)

		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		admin := api.Group("/admin")
		{
			admin.POST("/login", h.login)
			admin.POST("/logout", h.logout)
			admin.GET("/check", h.checkSession)
			admin.GET("/admins", h.listAdmins)
			admin.POST("/products", h.createProduct)
			admin.PUT("/products/:id", h.updateProduct)
			admin.DELETE("/products/:id", h.deleteProduct)
		}
	}

	router.NoRoute(h.noRoute)
}

// pathID extracts a non-negative decimal id. Anything else is treated as an
// unmatched route, so callers should return after a false result.
func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	if raw == "" {
		endpointNotFound(c)
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			endpointNotFound(c)
			return 0, false
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		endpointNotFound(c)
		return 0, false
	}
	return id, true
}

func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	h.logger.WithField("path", c.Request.URL.Path).Errorf("panic: %v", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Internal server error",
	})
}
