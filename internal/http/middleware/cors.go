package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var DefaultAllowOrigins = []string{
	"http://localhost:80",
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:5174",
	"http://127.0.0.1:80",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:5174",
}

func corsConfig(allowOrigins []string) cors.Config {
	if len(allowOrigins) == 0 {
		allowOrigins = DefaultAllowOrigins
	}
	return cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", headerRequestID, headerTraceID},
		ExposeHeaders:    []string{headerRequestID, headerTraceID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// ValidateCORS reports origins that CORS would reject, such as entries
// without an http:// or https:// scheme.
func ValidateCORS(allowOrigins []string) error {
	cfg := corsConfig(allowOrigins)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// CORS allows the given origins, or DefaultAllowOrigins when none are set.
// It panics on origins ValidateCORS rejects.
func CORS(allowOrigins []string) gin.HandlerFunc {
	return cors.New(corsConfig(allowOrigins))
}
