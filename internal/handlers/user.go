package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/book_library/internal/hash"
	"github.com/Skotchmaster/book_library/internal/logging"
	authmw "github.com/Skotchmaster/book_library/internal/middleware/auth"
	"github.com/Skotchmaster/book_library/internal/mykafka"
	"github.com/Skotchmaster/book_library/internal/repo"
)

type UserHandler struct {
	Repo       *repo.GormRepo
	BcryptCost int
	Producer   *mykafka.Producer
}

func (h *UserHandler) Profile(c echo.Context) error {
	userID, err := authmw.GetID(c)
	if err != nil {
		return err
	}
	user, err := h.Repo.FindUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword requires the current password to verify and the new one to
// pass the composition policy. The stored hash is untouched on any failure.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := authmw.GetID(c)
	if err != nil {
		return err
	}

	var req struct {
		Password    string `json:"password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid body")
	}

	user, err := h.Repo.FindUser(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
	}
	if err := hash.ValidatePassword(req.NewPassword); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	newHash, err := hash.HashPassword(req.NewPassword, h.BcryptCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if err := h.Repo.UpdatePasswordHash(c.Request().Context(), userID, newHash); err != nil {
		return httpError(err)
	}
	logging.FromContext(c.Request().Context()).Info("password changed", "user_id", userID)

	publish(c, h.Producer, "user_events", fmt.Sprint(userID), map[string]any{
		"type":    "password_changed",
		"user_id": userID,
	})

	return c.NoContent(http.StatusNoContent)
}
