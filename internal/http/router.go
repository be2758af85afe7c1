package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"civic-feedback/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	corsOrigins []string,
	districtH *DistrictHandler,
	justiceH *JusticeHandler,
	adminH *AdminHandler,
	tokens *service.TokenService,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, JSON content-type y CORS.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())
	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		r.Use(cors.New(corsCfg))
	} else {
		r.Use(cors.Default())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	district := r.Group("/district")
	district.POST("/start", districtH.StartChat)
	district.POST("/turn", districtH.NextQuestion)

	justice := r.Group("/justice")
	justice.POST("/start", justiceH.StartChat)
	justice.POST("/turn", justiceH.NextQuestion)

	admin := r.Group("/admin")
	admin.POST("/login", adminH.Login)
	feedback := admin.Group("/feedback", TokenAuthMiddleware(tokens))
	feedback.GET("/district", adminH.ListDistrict)
	feedback.GET("/justice", adminH.ListJustice)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
