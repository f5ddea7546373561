package material

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/response"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/logger"
)

var (
	// Missing / invalid input
	ErrMissingRequiredFields = errors.New("missing required fields: type and authorId")
	ErrInvalidMaterialID     = errors.New("invalid material id")
	ErrInvalidType           = errors.New("invalid type, use: LIVRO, ARTIGO or VIDEO")
	ErrInvalidStatus         = errors.New("invalid status, use: RASCUNHO, PUBLICADO or ARQUIVADO")
	ErrInvalidTitle          = errors.New("title (manual or via ISBN) is required and must be 3-100 characters")
	ErrInvalidDescription    = errors.New("description, when provided, must be at most 1000 characters")
	ErrInvalidISBN           = errors.New("invalid ISBN format (must be exactly 13 digits)")
	ErrInvalidDOI            = errors.New("invalid DOI format (e.g. 10.1234/example)")
	ErrBookFieldsRequired    = errors.New("isbn and pages are required for LIVRO (pages may be filled via ISBN lookup)")
	ErrInvalidPages          = errors.New("pages must be a number greater than zero")
	ErrDOIRequired           = errors.New("doi is required for ARTIGO")
	ErrVideoFieldsRequired   = errors.New("url and durationMin are required for VIDEO")
	ErrInvalidDuration       = errors.New("durationMin must be a number greater than zero")

	// Lookup / authorization / persistence
	ErrAuthorNotFound    = errors.New("author not found with the given id")
	ErrMaterialNotFound  = errors.New("material not found")
	ErrNotOwner          = errors.New("access denied: you are not the creator of this material")
	ErrNotPublished      = errors.New("this material is not publicly available")
	ErrISBNAlreadyExists = errors.New("this ISBN is already registered")
	ErrDOIAlreadyExists  = errors.New("this DOI is already registered")
)

// Every error kind maps to exactly one status/message pair. Unknown errors
// fall through to a generic 500 so storage details never leak.
var materialErrorStatus = map[error]int{
	ErrMissingRequiredFields: http.StatusBadRequest,
	ErrInvalidMaterialID:     http.StatusBadRequest,
	ErrInvalidType:           http.StatusBadRequest,
	ErrInvalidStatus:         http.StatusBadRequest,
	ErrInvalidTitle:          http.StatusBadRequest,
	ErrInvalidDescription:    http.StatusBadRequest,
	ErrInvalidISBN:           http.StatusBadRequest,
	ErrInvalidDOI:            http.StatusBadRequest,
	ErrBookFieldsRequired:    http.StatusBadRequest,
	ErrInvalidPages:          http.StatusBadRequest,
	ErrDOIRequired:           http.StatusBadRequest,
	ErrVideoFieldsRequired:   http.StatusBadRequest,
	ErrInvalidDuration:       http.StatusBadRequest,

	ErrAuthorNotFound:    http.StatusNotFound,
	ErrMaterialNotFound:  http.StatusNotFound,
	ErrNotOwner:          http.StatusForbidden,
	ErrNotPublished:      http.StatusForbidden,
	ErrISBNAlreadyExists: http.StatusConflict,
	ErrDOIAlreadyExists:  http.StatusConflict,
}

// HandleMaterialError writes the mapped response for err.
// Returns true when err was non-nil and a response was written.
func HandleMaterialError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, status := range materialErrorStatus {
		if errors.Is(err, known) {
			response.Error(c, status, known.Error())
			return true
		}
	}

	logger.Error("material request failed", err)
	response.InternalServerError(c, "could not process your request")
	return true
}
