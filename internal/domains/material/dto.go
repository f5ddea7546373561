package material

import "unicode/utf8"

// ========================================
// REQUEST DTOs
// ========================================

// CreateMaterialRequest carries the raw creation input. Optional fields are
// pointers so the pipeline can tell "absent" from "zero": the enrichment
// merge must never overwrite a user-supplied value.
type CreateMaterialRequest struct {
	Title       *string `json:"title"`
	Type        string  `json:"type"`
	AuthorID    *int64  `json:"authorId"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	ISBN        *string `json:"isbn"`
	DOI         *string `json:"doi"`
	Pages       *int    `json:"pages"`
	DurationMin *int    `json:"durationMin"`
	URL         *string `json:"url"`
}

// TitleSupplied reports whether the user sent a non-empty title
func (r CreateMaterialRequest) TitleSupplied() bool {
	return r.Title != nil && *r.Title != ""
}

// PagesSupplied reports whether the user sent a page count
func (r CreateMaterialRequest) PagesSupplied() bool {
	return r.Pages != nil
}

// UpdateMaterialRequest allows partial mutation of title, description and
// status only. Variant fields (isbn, doi, ...) are deliberately not
// updatable: changing them would require re-running uniqueness checks.
type UpdateMaterialRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (r UpdateMaterialRequest) Validate() error {
	if r.Title != nil {
		if n := utf8.RuneCountInString(*r.Title); n < 3 || n > 100 {
			return ErrInvalidTitle
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > 1000 {
		return ErrInvalidDescription
	}
	return nil
}

// ListMaterialsRequest - public listing query parameters
type ListMaterialsRequest struct {
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
	Title       string `form:"title"`
	Type        string `form:"type"`
	AuthorName  string `form:"authorName"`
	Description string `form:"description"`
}

// SetDefaults applies the documented pagination defaults
func (r *ListMaterialsRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
}
