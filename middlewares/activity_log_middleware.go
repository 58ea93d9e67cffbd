package middlewares

import (
	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

// ActivityLogMiddleware writes one audit row per authenticated request,
// after the handler has run. Failures are dropped; auditing never blocks
// the response.
func ActivityLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		uid := c.GetUint("userID")
		if uid == 0 {
			return
		}
		entry := models.ActivityLog{
			UserID: uid,
			Method: c.Request.Method,
			Path:   c.FullPath(),
			Status: c.Writer.Status(),
		}
		_ = config.DB.Create(&entry).Error
	}
}
