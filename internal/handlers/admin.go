package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/book_library/internal/logging"
	"github.com/Skotchmaster/book_library/internal/models"
	"github.com/Skotchmaster/book_library/internal/mykafka"
	"github.com/Skotchmaster/book_library/internal/repo"
	"github.com/Skotchmaster/book_library/internal/service/search"
)

type AdminHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.Repo.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.Repo.FindUser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes the account and every library entry it owns in one
// transaction.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Repo.DeleteUserCascade(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	logging.FromContext(c.Request().Context()).Info("user deleted", "user_id", id)

	publish(c, h.Producer, "user_events", fmt.Sprint(id), map[string]any{
		"type":    "user_deleted",
		"user_id": id,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) AddAuthor(c echo.Context) error {
	var req struct {
		AuthorName string `json:"author_name"`
	}
	if err := c.Bind(&req); err != nil || req.AuthorName == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "author_name is required")
	}

	author := models.Author{AuthorName: req.AuthorName}
	if err := h.Repo.CreateAuthor(c.Request().Context(), &author); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *AdminHandler) AddGenre(c echo.Context) error {
	var req struct {
		GenreName string `json:"genre_name"`
	}
	if err := c.Bind(&req); err != nil || req.GenreName == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "genre_name is required")
	}

	genre := models.Genre{GenreName: req.GenreName}
	if err := h.Repo.CreateGenre(c.Request().Context(), &genre); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, genre)
}

func (h *AdminHandler) AddBook(c echo.Context) error {
	var req struct {
		Title         string  `json:"title"`
		AuthorID      uint    `json:"author_id"`
		GenreID       uint    `json:"genre_id"`
		PublishedDate int     `json:"published_date"`
		PageNumber    int     `json:"page_number"`
		Price         float64 `json:"price"`
		Rating        int     `json:"rating"`
		Synopsis      string  `json:"synopsis"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid body")
	}
	if req.Title == "" || req.AuthorID == 0 || req.GenreID == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "title, author_id and genre_id are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "rating must be between 1 and 5")
	}

	book := models.Book{
		Title:         req.Title,
		AuthorID:      req.AuthorID,
		GenreID:       req.GenreID,
		PublishedDate: req.PublishedDate,
		PageNumber:    req.PageNumber,
		Price:         req.Price,
		Rating:        req.Rating,
		Synopsis:      req.Synopsis,
	}
	if err := h.Repo.CreateBook(c.Request().Context(), &book); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown author_id or genre_id")
		}
		return httpError(err)
	}

	if h.ES != nil {
		if err := search.IndexBook(c.Request().Context(), h.ES, h.ESIndex, &book); err != nil {
			c.Logger().Errorf("es index error: %v", err)
		}
	}
	publish(c, h.Producer, "catalog_events", fmt.Sprint(book.ID), map[string]any{
		"type":    "book_created",
		"book_id": book.ID,
		"title":   book.Title,
	})

	return c.JSON(http.StatusCreated, book)
}

func (h *AdminHandler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Repo.DeleteBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	if h.ES != nil {
		if err := search.DeleteBook(c.Request().Context(), h.ES, h.ESIndex, id); err != nil {
			c.Logger().Errorf("es delete error: %v", err)
		}
	}
	publish(c, h.Producer, "catalog_events", fmt.Sprint(id), map[string]any{
		"type":    "book_deleted",
		"book_id": id,
	})

	return c.NoContent(http.StatusNoContent)
}
