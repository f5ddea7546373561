package material

import (
	"regexp"
	"strings"
	"time"
)

// Type enum - material variants
type Type string

const (
	TypeLivro  Type = "LIVRO"
	TypeArtigo Type = "ARTIGO"
	TypeVideo  Type = "VIDEO"
)

// ParseType normalizes and validates a material type from request input
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypeLivro, TypeArtigo, TypeVideo:
		return t, true
	}
	return "", false
}

// Status enum - visibility lifecycle
type Status string

const (
	StatusRascunho  Status = "RASCUNHO"
	StatusPublicado Status = "PUBLICADO"
	StatusArquivado Status = "ARQUIVADO"
)

// ParseStatus normalizes and validates a status from request input
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusRascunho, StatusPublicado, StatusArquivado:
		return st, true
	}
	return "", false
}

// Material is the domain entity. Variant fields are pointers: only the
// fields of the material's own variant are ever set.
type Material struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Type        Type    `json:"type" db:"type"`
	Status      Status  `json:"status" db:"status"`
	Description *string `json:"description" db:"description"`

	// LIVRO
	ISBN  *string `json:"isbn,omitempty" db:"isbn"`
	Pages *int    `json:"pages,omitempty" db:"pages"`

	// ARTIGO
	DOI *string `json:"doi,omitempty" db:"doi"`

	// VIDEO
	URL         *string `json:"url,omitempty" db:"url"`
	DurationMin *int    `json:"durationMin,omitempty" db:"duration_min"`

	// Immutable references, set once at creation
	AuthorID  int64 `json:"authorId" db:"author_id"`
	CreatorID int64 `json:"creatorId" db:"creator_id"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Joined summaries, populated on reads
	Author  *AuthorSummary  `json:"author,omitempty"`
	Creator *CreatorSummary `json:"creator,omitempty"`
}

// AuthorSummary is the author projection embedded in material responses
type AuthorSummary struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Type           string     `json:"type"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty"`
	Cidade         *string    `json:"cidade,omitempty"`
}

// CreatorSummary never exposes more than id and email
type CreatorSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Format rules
var (
	// ISBN: exactly 13 ASCII digits
	isbnRegex = regexp.MustCompile(`^[0-9]{13}$`)
	// DOI: "10.<4-9 digits>/<token>", token charset per CrossRef
	doiRegex = regexp.MustCompile(`(?i)^10\.[0-9]{4,9}/[-._;()/:A-Z0-9]+$`)
)

func ValidISBN(isbn string) bool {
	return isbnRegex.MatchString(isbn)
}

func ValidDOI(doi string) bool {
	return doiRegex.MatchString(doi)
}

// requiredField names a variant field and knows how to detect its presence
// on a candidate material.
type requiredField struct {
	name    string
	present func(m *Material) bool
}

// variantFields is the static required-field table per variant. The
// pipeline matches over it exhaustively instead of branching on raw
// strings; an unknown type is rejected up front by ParseType.
var variantFields = map[Type][]requiredField{
	TypeLivro: {
		{"isbn", func(m *Material) bool { return m.ISBN != nil && *m.ISBN != "" }},
		{"pages", func(m *Material) bool { return m.Pages != nil }},
	},
	TypeArtigo: {
		{"doi", func(m *Material) bool { return m.DOI != nil && *m.DOI != "" }},
	},
	TypeVideo: {
		{"url", func(m *Material) bool { return m.URL != nil && *m.URL != "" }},
		{"durationMin", func(m *Material) bool { return m.DurationMin != nil }},
	},
}

// MissingVariantFields returns the names of required variant fields absent
// from m. ok is false when the type has no entry in the table.
func MissingVariantFields(m *Material) (missing []string, ok bool) {
	fields, ok := variantFields[m.Type]
	if !ok {
		return nil, false
	}
	for _, f := range fields {
		if !f.present(m) {
			missing = append(missing, f.name)
		}
	}
	return missing, true
}

// IsPublished reports whether the material is publicly visible
func (m *Material) IsPublished() bool {
	return m.Status == StatusPublicado
}
