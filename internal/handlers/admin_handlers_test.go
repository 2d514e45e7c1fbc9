package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/book_library/internal/models"
)

func TestAddAuthorAndGenre(t *testing.T) {
	r := initTestRepo(t)
	h := &AdminHandler{Repo: r}

	c, rec := newJSONContext(t, http.MethodPost, "/admin/add_author", map[string]string{
		"author_name": "Frank Herbert",
	})
	require.NoError(t, h.AddAuthor(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// duplicate author is a conflict
	c, _ = newJSONContext(t, http.MethodPost, "/admin/add_author", map[string]string{
		"author_name": "Frank Herbert",
	})
	requireHTTPError(t, h.AddAuthor(c), http.StatusConflict)

	c, rec = newJSONContext(t, http.MethodPost, "/admin/add_genre", map[string]string{
		"genre_name": "Science Fiction",
	})
	require.NoError(t, h.AddGenre(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, _ = newJSONContext(t, http.MethodPost, "/admin/add_genre", map[string]string{})
	requireHTTPError(t, h.AddGenre(c), http.StatusUnprocessableEntity)
}

func TestAddBookCatalog(t *testing.T) {
	r := initTestRepo(t)
	h := &AdminHandler{Repo: r}

	author := models.Author{AuthorName: "Frank Herbert"}
	require.NoError(t, r.DB.Create(&author).Error)
	genre := models.Genre{GenreName: "Science Fiction"}
	require.NoError(t, r.DB.Create(&genre).Error)

	c, rec := newJSONContext(t, http.MethodPost, "/admin/add_book", map[string]any{
		"title":          "Dune",
		"author_id":      author.ID,
		"genre_id":       genre.ID,
		"published_date": 1965,
		"page_number":    412,
		"price":          12.5,
		"rating":         5,
		"synopsis":       "Desert planet.",
	})
	require.NoError(t, h.AddBook(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var book models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &book))
	require.NotZero(t, book.ID)

	// dangling author reference
	c, _ = newJSONContext(t, http.MethodPost, "/admin/add_book", map[string]any{
		"title":     "Ghost Book",
		"author_id": 999,
		"genre_id":  genre.ID,
		"rating":    3,
	})
	requireHTTPError(t, h.AddBook(c), http.StatusUnprocessableEntity)

	// duplicate title
	c, _ = newJSONContext(t, http.MethodPost, "/admin/add_book", map[string]any{
		"title":     "Dune",
		"author_id": author.ID,
		"genre_id":  genre.ID,
		"rating":    5,
	})
	requireHTTPError(t, h.AddBook(c), http.StatusConflict)
}

func TestDeleteBookCatalog(t *testing.T) {
	r := initTestRepo(t)
	h := &AdminHandler{Repo: r}
	book := seedBook(t, r, "Dune")

	c, rec := newJSONContext(t, http.MethodDelete, "/admin/book/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues(itoa(book.ID))
	require.NoError(t, h.DeleteBook(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	c, _ = newJSONContext(t, http.MethodDelete, "/admin/book/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues(itoa(book.ID))
	requireHTTPError(t, h.DeleteBook(c), http.StatusNotFound)
}

func TestListUsersOmitsHashes(t *testing.T) {
	r := initTestRepo(t)
	h := &AdminHandler{Repo: r}
	seedUser(t, r, "alice", "Correct1!", models.RoleUser)
	seedUser(t, r, "root", "Correct1!", models.RoleAdmin)

	c, rec := newJSONContext(t, http.MethodGet, "/admin", nil)
	require.NoError(t, h.ListUsers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	require.NotContains(t, rec.Body.String(), "password_hash")
}
