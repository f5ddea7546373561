package author

// CreateAuthorRequest - author creation body. The variant decides which
// optional fields are required; that check lives in the service, where the
// type has already been parsed.
type CreateAuthorRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	DataNascimento *string `json:"data_nascimento"`
	Cidade         *string `json:"cidade"`
}
