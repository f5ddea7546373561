package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/middleware"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/response"
)

type MaterialHandler struct {
	service material.Service
}

func NewMaterialHandler(service material.Service) *MaterialHandler {
	return &MaterialHandler{service: service}
}

// Create handles POST /api/v1/materials
func (h *MaterialHandler) Create(c *gin.Context) {
	var req material.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	m, err := h.service.Create(c.Request.Context(), userID, req)
	if material.HandleMaterialError(c, err) {
		return
	}

	response.JSON(c, http.StatusCreated, m)
}

// List handles GET /api/v1/materials with pagination and filters
func (h *MaterialHandler) List(c *gin.Context) {
	var req material.ListMaterialsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.SetDefaults()

	materials, total, err := h.service.List(c.Request.Context(), req)
	if material.HandleMaterialError(c, err) {
		return
	}

	response.Paginated(c, materials, response.NewPagination(total, req.Page, req.Limit))
}

// GetByID handles GET /api/v1/materials/:id
func (h *MaterialHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, material.ErrInvalidMaterialID.Error())
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), id)
	if material.HandleMaterialError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, m)
}

// Update handles PATCH /api/v1/materials/:id
func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, material.ErrInvalidMaterialID.Error())
		return
	}

	var req material.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	m, err := h.service.Update(c.Request.Context(), userID, id, req)
	if material.HandleMaterialError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, m)
}

// Delete handles DELETE /api/v1/materials/:id
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, material.ErrInvalidMaterialID.Error())
		return
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); material.HandleMaterialError(c, err) {
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
