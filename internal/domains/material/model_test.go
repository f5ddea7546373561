package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
		ok   bool
	}{
		{"LIVRO", TypeLivro, true},
		{"livro", TypeLivro, true},
		{" Artigo ", TypeArtigo, true},
		{"VIDEO", TypeVideo, true},
		{"PODCAST", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseType(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"RASCUNHO", StatusRascunho, true},
		{"publicado", StatusPublicado, true},
		{"Arquivado", StatusArquivado, true},
		{"DELETADO", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestValidISBN(t *testing.T) {
	valid := []string{"9788535910663", "0000000000000"}
	invalid := []string{
		"978853591066",    // 12 digits
		"97885359106633",  // 14 digits
		"978-8535910663",  // separators
		"978853591066a",   // letter
		"",
	}

	for _, isbn := range valid {
		assert.True(t, ValidISBN(isbn), "isbn %q", isbn)
	}
	for _, isbn := range invalid {
		assert.False(t, ValidISBN(isbn), "isbn %q", isbn)
	}
}

func TestValidDOI(t *testing.T) {
	valid := []string{
		"10.1590/S0100-40422008000100001",
		"10.1000/xyz123",
		"10.123456789/abc.def(1)",
	}
	invalid := []string{
		"doi:10.1590/S0100",
		"11.1590/S0100",
		"10.159/abc", // registrant too short
		"10.1590/",
		"",
	}

	for _, doi := range valid {
		assert.True(t, ValidDOI(doi), "doi %q", doi)
	}
	for _, doi := range invalid {
		assert.False(t, ValidDOI(doi), "doi %q", doi)
	}
}

func TestMissingVariantFields(t *testing.T) {
	isbn := "9788535910663"
	pages := 100
	doi := "10.1000/xyz"
	url := "https://videos.example.com/aula"
	duration := 30

	tests := []struct {
		name    string
		m       Material
		missing []string
		ok      bool
	}{
		{"complete book", Material{Type: TypeLivro, ISBN: &isbn, Pages: &pages}, nil, true},
		{"book without pages", Material{Type: TypeLivro, ISBN: &isbn}, []string{"pages"}, true},
		{"book without anything", Material{Type: TypeLivro}, []string{"isbn", "pages"}, true},
		{"complete article", Material{Type: TypeArtigo, DOI: &doi}, nil, true},
		{"article without doi", Material{Type: TypeArtigo}, []string{"doi"}, true},
		{"complete video", Material{Type: TypeVideo, URL: &url, DurationMin: &duration}, nil, true},
		{"video without url", Material{Type: TypeVideo, DurationMin: &duration}, []string{"url"}, true},
		{"unknown type", Material{Type: "PODCAST"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, ok := MissingVariantFields(&tt.m)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.missing, missing)
		})
	}
}

func TestIsPublished(t *testing.T) {
	assert.True(t, (&Material{Status: StatusPublicado}).IsPublished())
	assert.False(t, (&Material{Status: StatusRascunho}).IsPublished())
	assert.False(t, (&Material{Status: StatusArquivado}).IsPublished())
}
