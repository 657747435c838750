package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rightupnext/South-mirror-backend/utils"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, "HTTP Request")
		utils.Fail(c, http.StatusInternalServerError, "Internal server error")
	})
}
