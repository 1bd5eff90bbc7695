package api

import (
	"net/http"               // HTTP status codes
	"tacash/internal/domain" // Importing domain models
	"tacash/internal/ledger" // Ledger core
	"tacash/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// ListAccountsHandler returns all accounts, optionally filtered by a
// name/email substring search. Unfiltered listings are cached.
func ListAccountsHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		search := c.Query("search")
		cacheKey := "admin:accounts:search=" + search
		var accts []domain.Account
		found, err := utils.GetCache(ctx, rdb, cacheKey, &accts) // Try cache first
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"accounts": accts, "cached": true})
			return
		}
		accts, err = svc.ListAccounts(ctx, search)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, accts, cacheTTL)
		c.JSON(http.StatusOK, gin.H{"accounts": accts, "cached": false})
	}
}

// ApproveRequest carries the role/status patch for an account.
type ApproveRequest struct {
	Role   string `json:"role" binding:"required,oneof=user agent admin"`   // New role
	Status string `json:"status" binding:"required,oneof=pending approved"` // New status
}

// ApproveHandler sets an account's role and status. The pending to
// approved transition grants the role-keyed onboarding credit once.
func ApproveHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		var req ApproveRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		acct, err := svc.Approve(c.Request.Context(), email, req.Role, req.Status)
		if err != nil {
			fail(c, err)
			return
		}
		// Drop stale views of the updated account
		_ = utils.DeleteCache(c.Request.Context(), rdb, accountKey(acct.ID), roleKey(email))
		c.JSON(http.StatusOK, gin.H{"message": "Account role and status updated successfully", "account": acct})
	}
}

// ListTransactionsHandler returns the full transaction history, cached.
func ListTransactionsHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cacheKey := "admin:txs:all"
		var txs []domain.Transaction
		found, err := utils.GetCache(ctx, rdb, cacheKey, &txs)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"transactions": txs, "cached": true})
			return
		}
		txs, err = svc.AllHistory(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, txs, cacheTTL)
		c.JSON(http.StatusOK, gin.H{"transactions": txs, "cached": false})
	}
}
