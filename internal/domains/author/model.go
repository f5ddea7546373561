package author

import (
	"strings"
	"time"
)

// Type enum - author variants
type Type string

const (
	TypePessoa      Type = "PESSOA"
	TypeInstituicao Type = "INSTITUICAO"
)

// ParseType normalizes and validates an author type from request input
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypePessoa, TypeInstituicao:
		return t, true
	}
	return "", false
}

// Author is the domain entity. Authors are immutable once created and
// carry no ownership: any authenticated user can create one, and there is
// no update or delete path.
type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Type Type   `json:"type" db:"type"`

	// PESSOA
	DataNascimento *time.Time `json:"data_nascimento,omitempty" db:"data_nascimento"`

	// INSTITUICAO
	Cidade *string `json:"cidade,omitempty" db:"cidade"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
