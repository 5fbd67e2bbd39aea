package handlers

import (
	"github.com/CorrelAid/chart_submission_portal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every route. Only the POST routes are rate limited, and
// only when a positive rate is configured.
func SetupRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.DomainWhitelistMiddleware(h.cfg.AllowedDomains))

	// Set a lower memory limit for multipart forms (default is 32 MiB)
	router.MaxMultipartMemory = int64(h.cfg.MaxFileSize) + 1<<20
	router.SetHTMLTemplate(Templates())

	var limited gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if h.cfg.RateLimit > 0 {
		limited = middleware.RateLimitMiddleware(h.cfg.RateLimit)
	}

	router.GET("/", h.SubmitPage)
	router.POST("/submit", limited, h.SubmitForm)
	router.GET("/view", h.ViewPage)
	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.POST("/submit", limited, h.SubmitAPI)
		api.GET("/submissions/:id", h.GetSubmission)
	}
	return router
}
