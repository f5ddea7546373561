package author

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/response"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/logger"
)

var (
	ErrTypeRequired           = errors.New("the type field (PESSOA or INSTITUICAO) is required")
	ErrInvalidType            = errors.New("type must be PESSOA or INSTITUICAO")
	ErrInvalidPersonName      = errors.New("name is required and must be 3-80 characters")
	ErrInvalidInstitutionName = errors.New("name is required and must be 3-120 characters")
	ErrBirthDateRequired      = errors.New("data_nascimento is required for PESSOA")
	ErrInvalidBirthDate       = errors.New("invalid data_nascimento format, use ISO (YYYY-MM-DD)")
	ErrBirthDateInFuture      = errors.New("data_nascimento cannot be a future date")
	ErrInvalidCity            = errors.New("cidade is required and must be 2-80 characters")

	ErrNotFound = errors.New("author not found")
)

var authorErrorStatus = map[error]int{
	ErrTypeRequired:           http.StatusBadRequest,
	ErrInvalidType:            http.StatusBadRequest,
	ErrInvalidPersonName:      http.StatusBadRequest,
	ErrInvalidInstitutionName: http.StatusBadRequest,
	ErrBirthDateRequired:      http.StatusBadRequest,
	ErrInvalidBirthDate:       http.StatusBadRequest,
	ErrBirthDateInFuture:      http.StatusBadRequest,
	ErrInvalidCity:            http.StatusBadRequest,
	ErrNotFound:               http.StatusNotFound,
}

// HandleAuthorError writes the mapped response for err.
// Returns true when err was non-nil and a response was written.
func HandleAuthorError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, status := range authorErrorStatus {
		if errors.Is(err, known) {
			response.Error(c, status, known.Error())
			return true
		}
	}

	logger.Error("author request failed", err)
	response.InternalServerError(c, "could not process your request")
	return true
}
