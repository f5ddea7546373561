package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/author"
)

// authorService implements author.Service
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

// Create validates the variant-specific fields and persists the author.
// Validation order follows the API contract: type first, then the fields
// of the matched variant.
func (s *authorService) Create(ctx context.Context, req author.CreateAuthorRequest) (*author.Author, error) {
	if req.Type == "" {
		return nil, author.ErrTypeRequired
	}

	variant, ok := author.ParseType(req.Type)
	if !ok {
		return nil, author.ErrInvalidType
	}

	a := &author.Author{
		Name: req.Name,
		Type: variant,
	}

	switch variant {
	case author.TypePessoa:
		if !nameInBounds(req.Name, 3, 80) {
			return nil, author.ErrInvalidPersonName
		}
		if req.DataNascimento == nil || *req.DataNascimento == "" {
			return nil, author.ErrBirthDateRequired
		}
		birthDate, err := parseBirthDate(*req.DataNascimento)
		if err != nil {
			return nil, author.ErrInvalidBirthDate
		}
		if birthDate.After(time.Now()) {
			return nil, author.ErrBirthDateInFuture
		}
		a.DataNascimento = &birthDate

	case author.TypeInstituicao:
		if !nameInBounds(req.Name, 3, 120) {
			return nil, author.ErrInvalidInstitutionName
		}
		if req.Cidade == nil || !nameInBounds(*req.Cidade, 2, 80) {
			return nil, author.ErrInvalidCity
		}
		a.Cidade = req.Cidade
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return created, nil
}

func nameInBounds(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// parseBirthDate accepts ISO dates, with or without a time component
func parseBirthDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
