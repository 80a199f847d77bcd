// Package mockapi is an in-memory implementation of the storefront backend
// wire contract: the same envelope and the same legacy .php paths. It backs
// the `shopctl mock-server` command and the integration tests.
package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Server struct {
	router *gin.Engine
	store  *memStore
	logger zerolog.Logger
}

// NewServer creates a mock backend with a seeded catalog.
func NewServer(logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router: router,
		store:  newMemStore(),
		logger: logger,
	}

	router.Use(server.requestLog())
	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes. Paths reproduce the legacy backend
// byte-for-byte, .php suffix included.
func (s *Server) setupRoutes() {
	s.router.GET("/health.php", s.health)

	s.router.POST("/auth/register.php", s.register)
	s.router.POST("/auth/login.php", s.login)

	s.router.GET("/products/list.php", s.listProducts)
	s.router.GET("/products/get.php", s.getProduct)

	authed := s.router.Group("/", s.authRequired())
	{
		authed.POST("/cart/add.php", s.cartAdd)
		authed.GET("/cart/list.php", s.cartList)
		authed.POST("/cart/update.php", s.cartUpdate)
		authed.POST("/cart/remove.php", s.cartRemove)

		authed.POST("/orders/create.php", s.orderCreate)
		authed.GET("/orders/list.php", s.orderList)
		authed.GET("/orders/get.php", s.orderGet)
	}
}

// requestLog logs one line per request through zerolog.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// authRequired resolves the bearer token to a user id and stores it in the
// gin context under "userID".
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			fail(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		userID, ok := s.store.userByToken(token)
		if !ok {
			fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// ok writes a success envelope. Failures always go through fail so the
// envelope contract holds on every response.
func ok(c *gin.Context, message string, data any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func (s *Server) health(c *gin.Context) {
	ok(c, "", gin.H{
		"status":  "ok",
		"service": "shopctl-mock",
		"version": "0.1.0",
	})
}

// Engine exposes the router for httptest in integration tests.
func (s *Server) Engine() *gin.Engine {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
