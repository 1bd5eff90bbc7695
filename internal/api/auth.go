package api

import (
	"net/http"               // HTTP status codes
	"time"                   // Token validity windows
	"tacash/internal/ledger" // Ledger core
	"tacash/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Token validity windows. Login tokens are short-lived; the token
// handed out at registration only needs to cover first-session setup.
const (
	registerTokenTTL = 24 * time.Hour
	loginTokenTTL    = time.Hour
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`        // Display name must be provided
	Email    string `json:"email" binding:"required,email"` // Email must be provided and well-formed
	Phone    string `json:"phone" binding:"required"`       // Phone must be provided
	Password string `json:"password" binding:"required"`    // Secret must be provided
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be provided
	Password string `json:"password" binding:"required"`    // Secret must be provided
}

// RegisterHandler creates a pending account and issues a session token.
func RegisterHandler(svc *ledger.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		acct, err := svc.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
		if err != nil {
			fail(c, err)
			return
		}
		// Issue a session token for the new account
		token, err := utils.GenerateJWT(acct.ID, jwtSecret, registerTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Account registered successfully", "token": token, "account": acct})
	}
}

// LoginHandler authenticates an account and returns a one-hour token.
func LoginHandler(svc *ledger.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		acct, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			fail(c, err)
			return
		}
		token, err := utils.GenerateJWT(acct.ID, jwtSecret, loginTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token, "account": acct})
	}
}
