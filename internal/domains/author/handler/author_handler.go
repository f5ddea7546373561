package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/author"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Create handles POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if author.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusCreated, a)
}
