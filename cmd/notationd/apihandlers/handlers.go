// Package apihandlers implements the HTTP interface of the
// notationd server.
package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	apiKeys []string
}

// NewHTTPHandler returns the endpoints of the conversion
// API. When apiKeys is empty, requests need no key.
func NewHTTPHandler(
	apiKeys []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		apiKeys: apiKeys,
	}
}

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	v1 := rg.Group("/v1")
	if len(h.apiKeys) > 0 {
		v1.Use(hasValidAPIKey(h.apiKeys))
	}
	v1.POST("/convert", requirePayload(), h.convert)
	v1.GET("/evaluate", h.evaluate)
	v1.GET("/postfix", h.toPostfix)
	v1.GET("/prefix", h.toPrefix)
	v1.GET("/infix", h.toInfix)
}

// hasValidAPIKey aborts requests whose Api-Key header
// holds none of validKeys.
func hasValidAPIKey(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, k := range c.Request.Header.Values("Api-Key") {
			for _, vk := range validKeys {
				if k == vk {
					c.Next()
					return
				}
			}
		}
		slog.Warn("request without a valid API key", slog.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "a valid API key is missing"})
	}
}

func requirePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 {
			slog.Debug("requirePayload: payload missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "payload missing"})
			return
		}
		c.Next()
	}
}
