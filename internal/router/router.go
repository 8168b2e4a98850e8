package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cema-health/records-api/internal/handler"
	"github.com/cema-health/records-api/internal/middleware"
	"github.com/cema-health/records-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	authH    Handler
	clientH  Handler
	programH Handler
	enrollH  Handler
	adminH   Handler
	metrics  *metrics.Metrics
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH Handler,
	clientH Handler,
	programH Handler,
	enrollH Handler,
	adminH Handler,
	m *metrics.Metrics,
	cors middleware.CORSConfig,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(cors),
	)

	r := &Router{
		engine:   engine,
		auth:     auth,
		authH:    authH,
		clientH:  clientH,
		programH: programH,
		enrollH:  enrollH,
		adminH:   adminH,
		metrics:  m,
	}
	engine.Use(r.metricsMiddleware())

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/health", handler.Health)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")
	api.Use(r.auth.Authenticate())
	{
		r.authH.RegisterRoutes(api)
		r.clientH.RegisterRoutes(api)
		r.programH.RegisterRoutes(api)
		r.enrollH.RegisterRoutes(api)
	}

	privileged := r.engine.Group("/api/v1")
	privileged.Use(r.auth.Authenticate(), r.auth.RequireAdmin())
	{
		r.adminH.RegisterRoutes(privileged)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		r.metrics.RequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		r.metrics.RequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
