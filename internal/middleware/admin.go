package middleware

import (
	"net/http"               // HTTP status codes
	"tacash/internal/domain" // Importing domain models
	"tacash/internal/ledger" // Ledger core

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware checks the account's role from the store on each
// request, so a revoked admin loses access immediately.
func AdminOnlyMiddleware(accounts ledger.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, exists := c.Get("accountID") // Get account ID from context
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		acct, err := accounts.FindByID(c.Request.Context(), accountID.(string))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// Check if account role is admin
		if acct.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
