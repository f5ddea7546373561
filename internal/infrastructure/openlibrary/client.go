package openlibrary

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/logger"
)

// bookPayload mirrors the subset of the OpenLibrary books API response
// the enrichment step cares about.
type bookPayload struct {
	Title         string `json:"title"`
	NumberOfPages int    `json:"number_of_pages"`
}

// Client looks up bibliographic data on openlibrary.org.
// It implements material.CatalogLookup: failures of any kind degrade
// to a not-found result instead of an error, so an upstream outage
// never blocks material creation.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

func (c *Client) LookupByISBN(ctx context.Context, isbn string) (*material.BookData, bool) {
	bibkey := fmt.Sprintf("ISBN:%s", isbn)

	// The response is keyed by bibkey; an unknown ISBN yields an
	// empty object, not an HTTP error.
	result := map[string]bookPayload{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"bibkeys": bibkey,
			"format":  "json",
			"jscmd":   "data",
		}).
		SetResult(&result).
		Get("/api/books")

	if err != nil {
		logger.Warn("openlibrary lookup failed", err)
		return nil, false
	}
	if resp.StatusCode() != http.StatusOK {
		logger.Warn("openlibrary returned non-200 status",
			fmt.Errorf("status %d", resp.StatusCode()))
		return nil, false
	}

	book, ok := result[bibkey]
	if !ok {
		return nil, false
	}

	return &material.BookData{
		Title: book.Title,
		Pages: book.NumberOfPages,
	}, true
}
