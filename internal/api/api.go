// Package api wires the ledger core to gin. Handlers stay thin: bind
// the request, call the core, map the domain error to a status code,
// and keep the redis cache honest.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tacash/internal/ledger"
)

// status maps a domain error to its HTTP status code.
func status(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, ledger.ErrSenderNotFound),
		errors.Is(err, ledger.ErrRecipientNotFound),
		errors.Is(err, ledger.ErrAgentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInvalidCredential),
		errors.Is(err, ledger.ErrIncorrectPIN):
		return http.StatusUnauthorized
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrDuplicateEmail):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the mapped status with the error's stable message.
func fail(c *gin.Context, err error) {
	c.JSON(status(err), gin.H{"error": err.Error()})
}

// accountID pulls the authenticated account ID set by the JWT
// middleware; ok is false if the route was not protected.
func accountID(c *gin.Context) (string, bool) {
	v, exists := c.Get("accountID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// Cache keys
func accountKey(id string) string    { return "account:id:" + id }
func roleKey(email string) string    { return "account:role:" + email }
func historyKey(email string) string { return "history:" + email }
