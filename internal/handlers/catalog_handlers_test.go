package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/book_library/internal/models"
)

func TestGetBook(t *testing.T) {
	r := initTestRepo(t)
	h := &CatalogHandler{Repo: r}
	book := seedBook(t, r, "Dune")

	c, rec := newJSONContext(t, http.MethodGet, "/book/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues(itoa(book.ID))
	require.NoError(t, h.GetBook(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, _ = newJSONContext(t, http.MethodGet, "/book/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues("999")
	requireHTTPError(t, h.GetBook(c), http.StatusNotFound)

	c, _ = newJSONContext(t, http.MethodGet, "/book/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	requireHTTPError(t, h.GetBook(c), http.StatusNotFound)
}

func TestListBooksFiltered(t *testing.T) {
	r := initTestRepo(t)
	h := &CatalogHandler{Repo: r}

	author := models.Author{AuthorName: "Various"}
	require.NoError(t, r.DB.Create(&author).Error)
	genre := models.Genre{GenreName: "Mixed"}
	require.NoError(t, r.DB.Create(&genre).Error)
	for _, b := range []models.Book{
		{Title: "Short One", AuthorID: author.ID, GenreID: genre.ID, Rating: 5, PageNumber: 120, PublishedDate: 1990},
		{Title: "Long One", AuthorID: author.ID, GenreID: genre.ID, Rating: 3, PageNumber: 900, PublishedDate: 1990},
		{Title: "Recent One", AuthorID: author.ID, GenreID: genre.ID, Rating: 4, PageNumber: 300, PublishedDate: 2020},
	} {
		require.NoError(t, r.DB.Create(&b).Error)
	}

	c, rec := newJSONContext(t, http.MethodGet, "/books?rating=4&max_pages=400", nil)
	require.NoError(t, h.ListBooks(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Book `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(2), resp.Meta.Total)
	for _, b := range resp.Data {
		require.GreaterOrEqual(t, b.Rating, 4)
		require.LessOrEqual(t, b.PageNumber, 400)
	}

	c, rec = newJSONContext(t, http.MethodGet, "/books?published=1990", nil)
	require.NoError(t, h.ListBooks(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(2), resp.Meta.Total)

	c, _ = newJSONContext(t, http.MethodGet, "/books?rating=9", nil)
	requireHTTPError(t, h.ListBooks(c), http.StatusUnprocessableEntity)
}

func TestListGenres(t *testing.T) {
	r := initTestRepo(t)
	h := &CatalogHandler{Repo: r}
	require.NoError(t, r.DB.Create(&models.Genre{GenreName: "Horror"}).Error)

	c, rec := newJSONContext(t, http.MethodGet, "/genres", nil)
	require.NoError(t, h.ListGenres(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var genres []models.Genre
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genres))
	require.Len(t, genres, 1)
}
