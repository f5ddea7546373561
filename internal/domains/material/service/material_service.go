package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/author"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material"
)

// materialService implements material.Service: the validation & enrichment
// pipeline for creation, the ownership guard for mutation, and the public
// read paths.
type materialService struct {
	repo       material.Repository
	authorRepo author.Repository // cross-domain: author existence check
	lookup     material.CatalogLookup
}

func NewMaterialService(
	repo material.Repository,
	authorRepo author.Repository,
	lookup material.CatalogLookup,
) material.Service {
	return &materialService{
		repo:       repo,
		authorRepo: authorRepo,
		lookup:     lookup,
	}
}

// ========================================
// CREATE - VALIDATION & ENRICHMENT PIPELINE
// ========================================

// Create runs the phases strictly in order; the first failing phase
// short-circuits the rest. Structural and author checks run before
// enrichment, title and variant checks after it: enrichment can supply
// fields those later checks depend on, so validating title up front would
// wrongly reject valid ISBN-only submissions.
func (s *materialService) Create(ctx context.Context, actingUserID int64, req material.CreateMaterialRequest) (*material.Material, error) {
	// Phase 1: presence of type and authorId
	if req.Type == "" || req.AuthorID == nil {
		return nil, material.ErrMissingRequiredFields
	}

	variant, ok := material.ParseType(req.Type)
	if !ok {
		return nil, material.ErrInvalidType
	}

	// Phase 2: status, defaulting to RASCUNHO
	status := material.StatusRascunho
	if req.Status != nil && *req.Status != "" {
		parsed, ok := material.ParseStatus(*req.Status)
		if !ok {
			return nil, material.ErrInvalidStatus
		}
		status = parsed
	}

	// Phase 3: the referenced author must exist
	if _, err := s.authorRepo.FindByID(ctx, *req.AuthorID); err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return nil, material.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	title := ""
	if req.Title != nil {
		title = *req.Title
	}
	pages := req.Pages

	// Phase 4: conditional enrichment, LIVRO only. The ISBN format gate
	// runs before any network call; lookup failures of every kind collapse
	// to "no data" and the pipeline moves on with what the user supplied.
	if variant == material.TypeLivro && req.ISBN != nil && *req.ISBN != "" &&
		(!req.TitleSupplied() || !req.PagesSupplied()) {

		if !material.ValidISBN(*req.ISBN) {
			return nil, material.ErrInvalidISBN
		}

		if data, found := s.lookup.LookupByISBN(ctx, *req.ISBN); found {
			// Merge rule: user-supplied values always win
			if title == "" && data.Title != "" {
				title = data.Title
			}
			if pages == nil && data.Pages > 0 {
				p := data.Pages
				pages = &p
			}
			log.Info().Str("isbn", *req.ISBN).Str("title", title).Msg("book data enriched from external catalog")
		} else {
			log.Info().Str("isbn", *req.ISBN).Msg("no external data found for ISBN")
		}
	}

	// Phase 5: title, manual or enriched, must now be present and in bounds
	if n := utf8.RuneCountInString(title); n < 3 || n > 100 {
		return nil, material.ErrInvalidTitle
	}

	// Phase 6: description bound
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > 1000 {
		return nil, material.ErrInvalidDescription
	}

	m := &material.Material{
		Title:       title,
		Type:        variant,
		Status:      status,
		Description: req.Description,
		AuthorID:    *req.AuthorID,
		CreatorID:   actingUserID,
	}

	switch variant {
	case material.TypeLivro:
		m.ISBN = req.ISBN
		m.Pages = pages
	case material.TypeArtigo:
		m.DOI = req.DOI
	case material.TypeVideo:
		m.URL = req.URL
		m.DurationMin = req.DurationMin
	}

	// Phase 7: variant-specific required fields and formats
	if err := s.validateVariant(m, req); err != nil {
		return nil, err
	}

	// Phase 8: persist; the store is authoritative for isbn/doi uniqueness
	created, err := s.repo.Create(ctx, m)
	if err != nil {
		if errors.Is(err, material.ErrISBNAlreadyExists) || errors.Is(err, material.ErrDOIAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create material: %w", err)
	}
	return created, nil
}

// validateVariant checks the static required-field table for the variant,
// then the per-field constraints.
func (s *materialService) validateVariant(m *material.Material, req material.CreateMaterialRequest) error {
	missing, ok := material.MissingVariantFields(m)
	if !ok {
		return material.ErrInvalidType
	}

	if len(missing) > 0 {
		switch m.Type {
		case material.TypeLivro:
			return material.ErrBookFieldsRequired
		case material.TypeArtigo:
			return material.ErrDOIRequired
		case material.TypeVideo:
			return material.ErrVideoFieldsRequired
		}
	}

	switch m.Type {
	case material.TypeLivro:
		// Re-check the ISBN format when phase 4 didn't run (title and
		// pages both supplied manually).
		if req.TitleSupplied() && req.PagesSupplied() && !material.ValidISBN(*m.ISBN) {
			return material.ErrInvalidISBN
		}
		if *m.Pages < 1 {
			return material.ErrInvalidPages
		}
	case material.TypeArtigo:
		if !material.ValidDOI(*m.DOI) {
			return material.ErrInvalidDOI
		}
	case material.TypeVideo:
		if *m.DurationMin < 1 {
			return material.ErrInvalidDuration
		}
	}
	return nil
}

// ========================================
// PUBLIC READS
// ========================================

func (s *materialService) GetByID(ctx context.Context, id int64) (*material.Material, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Non-published materials are hidden from everyone on this path,
	// including the creator.
	if !m.IsPublished() {
		return nil, material.ErrNotPublished
	}
	return m, nil
}

func (s *materialService) List(ctx context.Context, req material.ListMaterialsRequest) ([]material.Material, int, error) {
	req.SetDefaults()
	return s.repo.List(ctx, req)
}

// ========================================
// OWNERSHIP GUARD + MUTATIONS
// ========================================

// authorizeMutation fetches the material and verifies the acting user is
// its recorded creator. The forbidden response carries no detail beyond
// the status: callers cannot distinguish "wrong owner" further.
func (s *materialService) authorizeMutation(ctx context.Context, actingUserID, id int64) (*material.Material, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.CreatorID != actingUserID {
		return nil, material.ErrNotOwner
	}
	return m, nil
}

func (s *materialService) Update(ctx context.Context, actingUserID, id int64, req material.UpdateMaterialRequest) (*material.Material, error) {
	if _, err := s.authorizeMutation(ctx, actingUserID, id); err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != "" {
		parsed, ok := material.ParseStatus(*req.Status)
		if !ok {
			return nil, material.ErrInvalidStatus
		}
		normalized := string(parsed)
		req.Status = &normalized
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update material: %w", err)
	}
	return updated, nil
}

func (s *materialService) Delete(ctx context.Context, actingUserID, id int64) error {
	if _, err := s.authorizeMutation(ctx, actingUserID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}
