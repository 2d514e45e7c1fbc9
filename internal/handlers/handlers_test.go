package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/book_library/internal/config"
	"github.com/Skotchmaster/book_library/internal/hash"
	"github.com/Skotchmaster/book_library/internal/models"
	"github.com/Skotchmaster/book_library/internal/repo"
)

func initTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return repo.New(db)
}

func newJSONContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser mimics what the auth middleware puts on the context after a
// successful token validation.
func asUser(c echo.Context, user *models.User) {
	c.Set("userID", user.ID)
	c.Set("username", user.Username)
	c.Set("role", user.Role)
}

func seedUser(t *testing.T, r *repo.GormRepo, username, password, role string) *models.User {
	t.Helper()
	pwHash, err := hash.HashPassword(password, 4)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(t, r.DB.Create(&user).Error)
	return &user
}

func seedBook(t *testing.T, r *repo.GormRepo, title string) *models.Book {
	t.Helper()
	author := models.Author{AuthorName: "Author of " + title}
	require.NoError(t, r.DB.Create(&author).Error)
	genre := models.Genre{GenreName: "Genre of " + title}
	require.NoError(t, r.DB.Create(&genre).Error)
	book := models.Book{
		Title:    title,
		AuthorID: author.ID,
		GenreID:  genre.ID,
		Rating:   4,
	}
	require.NoError(t, r.DB.Create(&book).Error)
	return &book
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}
