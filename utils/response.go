package utils

import "github.com/gin-gonic/gin"

// Fail writes the uniform failure envelope and aborts the chain. Every
// handler error goes through here so clients always see the same shape.
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"statusCode": status,
		"message":    message,
	})
}
