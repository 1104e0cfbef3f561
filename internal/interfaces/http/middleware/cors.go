package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// PublicCORSPaths are called from customer browsers on any origin, so the
// configured origin list never applies to them.
var PublicCORSPaths = []string{"/api/v1/payments/", "/api/v1/webhooks/", "/health"}

// CORSMiddleware answers browser preflights. The configured origins restrict
// the staff routes only; a "*" entry or an empty list allows every origin.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := baseCORSConfig()
	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = allowedOrigins
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	}
	restricted := cors.New(cfg)
	if cfg.AllowAllOrigins {
		return restricted
	}

	open := baseCORSConfig()
	open.AllowAllOrigins = true
	permissive := cors.New(open)

	return func(c *gin.Context) {
		if isPublicCORSPath(c.Request.URL.Path) {
			permissive(c)
			return
		}
		restricted(c)
	}
}

func baseCORSConfig() cors.Config {
	return cors.Config{
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Origin", "Content-Type", "Authorization", "X-Client-Info", "Apikey", RequestIDHeader, IdempotencyHeader},
		ExposeHeaders:             []string{RequestIDHeader},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}
}

func isPublicCORSPath(path string) bool {
	for _, prefix := range PublicCORSPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Preflight answers OPTIONS requests that carry no Origin header, which the
// cors middleware passes through.
func Preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Status(http.StatusOK)
}
