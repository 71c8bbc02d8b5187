package stub

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rfpdocs/internal/config"
)

const contextKeyTenant = "tenant"

// anonymousTenant scopes unauthenticated requests, mirroring the backend's
// default tenant behavior.
const anonymousTenant = "public"

// Server is the stub backend.
type Server struct {
	store    *Store
	pipeline *pipeline
	secret   string
}

// NewServer creates a stub backend from config.
func NewServer(cfg *config.StubConfig) *Server {
	store := NewStore()
	return &Server{
		store:    store,
		pipeline: &pipeline{store: store, delay: cfg.ProcessingDelay},
		secret:   cfg.JWTSecret,
	}
}

// Router configures the Gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger())
	r.Use(s.tenantAuth())

	r.GET("/api/orgs/whoami", s.whoami)

	docs := r.Group("/api/documents")
	docs.GET("", s.listDocuments)
	docs.POST("/upload", s.uploadDocument)
	docs.GET("/:id", s.getDocument)
	docs.DELETE("/:id", s.deleteDocument)
	docs.GET("/:id/extraction", s.getExtraction)

	return r
}

// requestID injects an X-Request-ID header into the request and response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger logs each request with method, path, status, and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		id, _ := c.Get("request_id")
		log.Printf("[%s] %s %s %d %s",
			id,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency,
		)
	}
}

// tenantAuth resolves the tenant scope from the bearer token. Requests
// without a token fall back to the anonymous tenant; requests with a bad
// token are rejected.
func (s *Server) tenantAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(contextKeyTenant, anonymousTenant)
			c.Next()
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			return
		}
		claims, err := parseToken(s.secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(contextKeyTenant, claims.Tenant)
		c.Next()
	}
}

func tenantOf(c *gin.Context) string {
	tenant, _ := c.Get(contextKeyTenant)
	if t, ok := tenant.(string); ok && t != "" {
		return t
	}
	return anonymousTenant
}
