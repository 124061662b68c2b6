package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Root returns static service metadata.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Diet Plan & Nutrition API",
		"version": apiVersion,
		"endpoints": gin.H{
			"/generate_diet_plan":  "POST - Generate personalized diet plan",
			"/nutrition_breakdown": "POST - Analyze food nutrition",
			"/health":              "GET - Health check",
		},
	})
}

// HealthCheck reports liveness and whether the Gemini credential was
// configured at process start.
func HealthCheck(apiKeyExists bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "healthy",
			"api_key_exists": apiKeyExists,
		})
	}
}
