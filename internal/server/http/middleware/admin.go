package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

const (
	// AdminIDContextKey is a gin context key for the acting admin identifier.
	AdminIDContextKey = "adminID"
	// CapabilitiesContextKey is a gin context key for the admin's model.CapabilitySet.
	CapabilitiesContextKey = "adminCapabilities"

	AdminIDHeader      = "X-Admin-ID"
	CapabilitiesHeader = "X-Admin-Capabilities"
)

// AdminRequired reads the admin identity forwarded by the gateway. Requests without a positive
// admin id are rejected.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, err := strconv.ParseInt(strings.TrimSpace(c.GetHeader(AdminIDHeader)), 10, 64)
		if err != nil || adminID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "admin identity required"})
			return
		}

		c.Set(AdminIDContextKey, adminID)
		c.Set(CapabilitiesContextKey, model.ParseCapabilities(c.GetHeader(CapabilitiesHeader)))
		c.Next()
	}
}
