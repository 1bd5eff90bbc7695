package api

import (
	"context"                // Context for Redis operations
	"net/http"               // HTTP status codes
	"time"                   // Cache TTLs
	"tacash/internal/domain" // Importing domain models
	"tacash/internal/ledger" // Ledger core
	"tacash/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

const cacheTTL = 60 * time.Second

// MoveRequest is the payload for transfers and cash-outs. Amount stays
// a raw string; the core owns its validation.
type MoveRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"` // Target account email
	Amount         string `json:"amount" binding:"required"`                // Raw amount, validated by the core
	PIN            string `json:"pin" binding:"required"`                   // Transaction PIN
}

// SendMoneyHandler executes a peer transfer for the authenticated
// account.
func SendMoneyHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		senderID, ok := accountID(c) // Get account ID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req MoveRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		res, err := svc.SendMoney(c.Request.Context(), senderID, req.RecipientEmail, req.Amount, req.PIN)
		if err != nil {
			fail(c, err)
			return
		}
		invalidateMove(c.Request.Context(), rdb, senderID, res)
		c.JSON(http.StatusOK, gin.H{"message": "Transaction successful", "result": res})
	}
}

// CashOutHandler executes an agent cash-out for the authenticated
// account.
func CashOutHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		senderID, ok := accountID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		res, err := svc.CashOut(c.Request.Context(), senderID, req.RecipientEmail, req.Amount, req.PIN)
		if err != nil {
			fail(c, err)
			return
		}
		invalidateMove(c.Request.Context(), rdb, senderID, res)
		c.JSON(http.StatusOK, gin.H{"message": "Transaction successful", "result": res})
	}
}

// CurrentAccountHandler returns the authenticated account, cached.
func CurrentAccountHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := accountID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()
		var acct domain.Account
		found, err := utils.GetCache(ctx, rdb, accountKey(id), &acct) // Try cache first
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"account": acct, "cached": true})
			return
		}
		got, err := svc.Accounts.FindByID(ctx, id)
		if err != nil {
			fail(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, accountKey(id), got, cacheTTL)
		c.JSON(http.StatusOK, gin.H{"account": got, "cached": false})
	}
}

// RoleLookupResponse is the public role/status view of an account.
type RoleLookupResponse struct {
	Email  string `json:"email"`  // Account email
	Role   string `json:"role"`   // Account role
	Status string `json:"status"` // Approval status
}

// RoleLookupHandler returns role and status for an email. Public: the
// client uses it to route a recipient to the transfer or cash-out flow.
func RoleLookupHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		ctx := c.Request.Context()
		var resp RoleLookupResponse
		found, err := utils.GetCache(ctx, rdb, roleKey(email), &resp)
		if err == nil && found {
			c.JSON(http.StatusOK, resp)
			return
		}
		acct, err := svc.Accounts.FindByEmail(ctx, email)
		if err != nil {
			fail(c, err)
			return
		}
		resp = RoleLookupResponse{Email: acct.Email, Role: acct.Role, Status: acct.Status}
		_ = utils.SetCache(ctx, rdb, roleKey(email), resp, cacheTTL)
		c.JSON(http.StatusOK, resp)
	}
}

// HistoryHandler returns all transactions touching an email, cached.
func HistoryHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		ctx := c.Request.Context()
		var txs []domain.Transaction
		found, err := utils.GetCache(ctx, rdb, historyKey(email), &txs)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"transactions": txs, "cached": true})
			return
		}
		txs, err = svc.HistoryFor(ctx, email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		_ = utils.SetCache(ctx, rdb, historyKey(email), txs, cacheTTL)
		c.JSON(http.StatusOK, gin.H{"transactions": txs, "cached": false})
	}
}

// invalidateMove drops every cache entry a committed movement leaves
// stale: both parties' account views and both history feeds.
func invalidateMove(ctx context.Context, rdb *redis.Client, senderID string, res *ledger.MoveResult) {
	_ = utils.DeleteCache(ctx, rdb,
		accountKey(senderID),
		accountKey(res.RecipientID),
		historyKey(res.Transaction.SenderEmail),
		historyKey(res.Transaction.RecipientEmail),
	)
}
