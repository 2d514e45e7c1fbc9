package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/book_library/internal/repo"
	"github.com/Skotchmaster/book_library/internal/service/search"
	"github.com/Skotchmaster/book_library/internal/util"
)

type CatalogHandler struct {
	Repo *repo.GormRepo
}

func (h *CatalogHandler) ListBooks(c echo.Context) error {
	filter := repo.BookFilter{
		MinRating:     util.ParseIntDefault(c.QueryParam("rating"), 0),
		PublishedDate: util.ParseIntDefault(c.QueryParam("published"), 0),
		MaxPages:      util.ParseIntDefault(c.QueryParam("max_pages"), 0),
	}
	if filter.MinRating < 0 || filter.MinRating > 5 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "rating must be between 1 and 5")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, books, err := h.Repo.ListBooks(c.Request().Context(), filter, offset, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data": books,
		"meta": echo.Map{
			"page":  page,
			"size":  limit,
			"total": total,
		},
	})
}

func (h *CatalogHandler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.Repo.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *CatalogHandler) ListGenres(c echo.Context) error {
	genres, err := h.Repo.ListGenres(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, genres)
}

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "query is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, books, err := search.Search(c.Request().Context(), h.ES, h.Index, q, from, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "books": books})
}
