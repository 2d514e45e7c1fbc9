package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/book_library/internal/middleware/auth"
	"github.com/Skotchmaster/book_library/internal/models"
	"github.com/Skotchmaster/book_library/internal/mykafka"
	"github.com/Skotchmaster/book_library/internal/repo"
)

type LibraryHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

func identity(c echo.Context) (repo.Identity, error) {
	userID, err := authmw.GetID(c)
	if err != nil {
		return repo.Identity{}, err
	}
	return repo.Identity{UserID: userID, Admin: authmw.IsAdmin(c)}, nil
}

func (h *LibraryHandler) MyBooks(c echo.Context) error {
	userID, err := authmw.GetID(c)
	if err != nil {
		return err
	}
	rows, err := h.Repo.ListEntries(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LibraryHandler) AddBook(c echo.Context) error {
	userID, err := authmw.GetID(c)
	if err != nil {
		return err
	}

	var req struct {
		BookID      uint    `json:"book_id"`
		Description *string `json:"description"`
		Rating      *int    `json:"rating"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid body")
	}
	if req.BookID == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "book_id is required")
	}
	if !validRating(req.Rating) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "rating must be between 1 and 5")
	}

	entry := models.LibraryEntry{
		UserID:      userID,
		BookID:      req.BookID,
		Description: req.Description,
		Rating:      req.Rating,
	}
	if err := h.Repo.CreateEntry(c.Request().Context(), &entry); err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "library_events", fmt.Sprint(userID), map[string]any{
		"type":     "book_added_to_library",
		"user_id":  userID,
		"book_id":  entry.BookID,
		"entry_id": entry.ID,
	})

	return c.JSON(http.StatusCreated, entry)
}

func (h *LibraryHandler) UpdateEntry(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	entryID, err := pathID(c)
	if err != nil {
		return err
	}

	var req struct {
		Description *string `json:"description"`
		Rating      *int    `json:"rating"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid body")
	}
	if !validRating(req.Rating) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "rating must be between 1 and 5")
	}

	entry, err := h.Repo.UpdateEntry(c.Request().Context(), entryID, ident, req.Description, req.Rating)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *LibraryHandler) DeleteEntry(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	entryID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteEntry(c.Request().Context(), entryID, ident); err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "library_events", fmt.Sprint(ident.UserID), map[string]any{
		"type":     "entry_removed",
		"user_id":  ident.UserID,
		"entry_id": entryID,
	})

	return c.NoContent(http.StatusNoContent)
}
