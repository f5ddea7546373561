package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testISBN = "9788535910663"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second)
}

func TestLookupByISBN_Found(t *testing.T) {
	var gotQuery map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"bibkeys": r.URL.Query().Get("bibkeys"),
			"format":  r.URL.Query().Get("format"),
			"jscmd":   r.URL.Query().Get("jscmd"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ISBN:9788535910663":{"title":"Dom Casmurro","number_of_pages":256}}`))
	})

	data, found := client.LookupByISBN(context.Background(), testISBN)
	require.True(t, found)
	assert.Equal(t, "Dom Casmurro", data.Title)
	assert.Equal(t, 256, data.Pages)

	assert.Equal(t, "ISBN:9788535910663", gotQuery["bibkeys"])
	assert.Equal(t, "json", gotQuery["format"])
	assert.Equal(t, "data", gotQuery["jscmd"])
}

func TestLookupByISBN_UnknownISBNReturnsEmptyObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	data, found := client.LookupByISBN(context.Background(), testISBN)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestLookupByISBN_ServerErrorDegradesToNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, found := client.LookupByISBN(context.Background(), testISBN)
	assert.False(t, found)
}

func TestLookupByISBN_MalformedBodyDegradesToNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ISBN:9788535910663": "not an object"`))
	})

	_, found := client.LookupByISBN(context.Background(), testISBN)
	assert.False(t, found)
}

func TestLookupByISBN_TimeoutDegradesToNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 20*time.Millisecond)

	_, found := client.LookupByISBN(context.Background(), testISBN)
	assert.False(t, found)
}

func TestLookupByISBN_UnreachableHostDegradesToNotFound(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond)

	_, found := client.LookupByISBN(context.Background(), testISBN)
	assert.False(t, found)
}
