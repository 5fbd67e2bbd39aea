package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DomainWhitelistMiddleware rejects requests whose Host is not listed. An
// empty list lets everything through.
func DomainWhitelistMiddleware(allowedDomains []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(allowedDomains) == 0 {
			c.Next()
			return
		}

		host := c.Request.Host
		bare := host
		if h, _, err := net.SplitHostPort(host); err == nil {
			bare = h
		}

		allowed := false
		for _, domain := range allowedDomains {
			if strings.EqualFold(domain, host) || strings.EqualFold(domain, bare) {
				allowed = true
				break
			}
		}

		if !allowed {
			log.Printf("Rejected request for host %q", host)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  http.StatusForbidden,
				"message": "Permission denied",
			})
			return
		}

		c.Next()
	}
}
