// Package httperr maps application failures onto the JSON {message} bodies
// and status codes the API speaks.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a request failure.
type Kind int

const (
	Validation Kind = iota
	Unauthorized
	Forbidden
	NotFound
	Conflict
	Internal
)

// Status returns the HTTP status for the kind. Forbidden deliberately maps
// to 401, matching the storefront's original behavior, and Conflict to 400
// (duplicate phone on registration).
func (k Kind) Status() int {
	switch k {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Unauthorized, Forbidden:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a failure with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Respond writes err as a JSON {message} body. Unclassified errors become a
// generic 500 so internal detail never leaks to the client.
func Respond(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		c.JSON(e.Kind.Status(), gin.H{"message": e.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

// Abort writes err like Respond and stops the handler chain. For use in
// middleware.
func Abort(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}
