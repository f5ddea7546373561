package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/response"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/logger"
)

var (
	ErrEmailAlreadyExists = errors.New("this email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

var userErrorStatus = map[error]int{
	ErrEmailAlreadyExists: http.StatusConflict,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUserNotFound:       http.StatusNotFound,
}

// HandleUserError writes the mapped response for err.
// Returns true when err was non-nil and a response was written.
func HandleUserError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, status := range userErrorStatus {
		if errors.Is(err, known) {
			response.Error(c, status, known.Error())
			return true
		}
	}

	// Field validation failures carry their own messages
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.BadRequest(c, vErrs.Error())
		return true
	}

	logger.Error("user request failed", err)
	response.InternalServerError(c, "could not process your request")
	return true
}
