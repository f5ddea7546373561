package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/middleware"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/response"
)

type mockMaterialService struct {
	CreateFn  func(actingUserID int64, req material.CreateMaterialRequest) (*material.Material, error)
	GetByIDFn func(id int64) (*material.Material, error)
	ListFn    func(req material.ListMaterialsRequest) ([]material.Material, int, error)
	UpdateFn  func(actingUserID, id int64, req material.UpdateMaterialRequest) (*material.Material, error)
	DeleteFn  func(actingUserID, id int64) error
}

func (m *mockMaterialService) Create(ctx context.Context, actingUserID int64, req material.CreateMaterialRequest) (*material.Material, error) {
	return m.CreateFn(actingUserID, req)
}

func (m *mockMaterialService) GetByID(ctx context.Context, id int64) (*material.Material, error) {
	return m.GetByIDFn(id)
}

func (m *mockMaterialService) List(ctx context.Context, req material.ListMaterialsRequest) ([]material.Material, int, error) {
	return m.ListFn(req)
}

func (m *mockMaterialService) Update(ctx context.Context, actingUserID, id int64, req material.UpdateMaterialRequest) (*material.Material, error) {
	return m.UpdateFn(actingUserID, id, req)
}

func (m *mockMaterialService) Delete(ctx context.Context, actingUserID, id int64) error {
	return m.DeleteFn(actingUserID, id)
}

// fakeAuth injects an acting user id the way AuthMiddleware would
func fakeAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func materialTestRouter(svc material.Service, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMaterialHandler(svc)

	router := gin.New()
	router.GET("/materials", h.List)
	router.GET("/materials/:id", h.GetByID)
	router.POST("/materials", fakeAuth(userID), h.Create)
	router.PATCH("/materials/:id", fakeAuth(userID), h.Update)
	router.DELETE("/materials/:id", fakeAuth(userID), h.Delete)
	return router
}

func TestList_EnvelopeShape(t *testing.T) {
	svc := &mockMaterialService{
		ListFn: func(req material.ListMaterialsRequest) ([]material.Material, int, error) {
			return []material.Material{
				{ID: 1, Title: "Dom Casmurro", Type: material.TypeLivro, Status: material.StatusPublicado},
			}, 25, nil
		},
	}
	router := materialTestRouter(svc, 7)

	req := httptest.NewRequest(http.MethodGet, "/materials?page=2&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data       []material.Material `json:"data"`
		Pagination response.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Len(t, body.Data, 1)
	assert.Equal(t, 25, body.Pagination.TotalItems)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.Equal(t, 2, body.Pagination.CurrentPage)
	assert.Equal(t, 10, body.Pagination.ItemsPerPage)
}

func TestGetByID_DraftIsForbidden(t *testing.T) {
	svc := &mockMaterialService{
		GetByIDFn: func(id int64) (*material.Material, error) {
			return nil, material.ErrNotPublished
		},
	}
	router := materialTestRouter(svc, 7)

	req := httptest.NewRequest(http.MethodGet, "/materials/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"this material is not publicly available"}`, w.Body.String())
}

func TestGetByID_NonNumericID(t *testing.T) {
	router := materialTestRouter(&mockMaterialService{}, 7)

	req := httptest.NewRequest(http.MethodGet, "/materials/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_Returns201(t *testing.T) {
	svc := &mockMaterialService{
		CreateFn: func(actingUserID int64, req material.CreateMaterialRequest) (*material.Material, error) {
			return &material.Material{ID: 42, Title: *req.Title, CreatorID: actingUserID}, nil
		},
	}
	router := materialTestRouter(svc, 7)

	body := `{"title":"Dom Casmurro","type":"LIVRO","authorId":1,"isbn":"9788535910663","pages":256}`
	req := httptest.NewRequest(http.MethodPost, "/materials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created material.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, int64(7), created.CreatorID)
}

func TestCreate_ConflictMapsTo409(t *testing.T) {
	svc := &mockMaterialService{
		CreateFn: func(actingUserID int64, req material.CreateMaterialRequest) (*material.Material, error) {
			return nil, material.ErrISBNAlreadyExists
		},
	}
	router := materialTestRouter(svc, 7)

	body := `{"title":"Dom Casmurro","type":"LIVRO","authorId":1,"isbn":"9788535910663","pages":256}`
	req := httptest.NewRequest(http.MethodPost, "/materials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdate_NotOwnerMapsTo403(t *testing.T) {
	svc := &mockMaterialService{
		UpdateFn: func(actingUserID, id int64, req material.UpdateMaterialRequest) (*material.Material, error) {
			return nil, material.ErrNotOwner
		},
	}
	router := materialTestRouter(svc, 7)

	req := httptest.NewRequest(http.MethodPatch, "/materials/5", bytes.NewBufferString(`{"title":"Outro Título"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDelete_Returns204(t *testing.T) {
	svc := &mockMaterialService{
		DeleteFn: func(actingUserID, id int64) error {
			return nil
		},
	}
	router := materialTestRouter(svc, 7)

	req := httptest.NewRequest(http.MethodDelete, "/materials/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
