package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pitchside/turf-booking/internal/middleware"
	"github.com/pitchside/turf-booking/internal/repository"
)

// FavoriteHandler lets authenticated users maintain a list of favorite
// turfs.  Add and remove are idempotent.
type FavoriteHandler struct {
	Favorites *repository.FavoriteRepo
	Turfs     *repository.TurfRepo
}

func NewFavoriteHandler(favorites *repository.FavoriteRepo, turfs *repository.TurfRepo) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites, Turfs: turfs}
}

// Add handles PUT /api/favorites/:turfId.  Favoriting an already-favorited
// turf answers 204 just like the first time.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID, err := strconv.ParseUint(c.Param("turfId"), 10, 64)
	if err != nil || turfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	// The turf must exist; otherwise favorites would accumulate dangling rows.
	if _, err := h.Turfs.GetByID(ctx, turfID); err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		log.Printf("favorite: turf lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Favorites.Add(ctx, userID, turfID); err != nil {
		log.Printf("favorite: add failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add favorite failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Remove handles DELETE /api/favorites/:turfId.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	turfID, err := strconv.ParseUint(c.Param("turfId"), 10, 64)
	if err != nil || turfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Favorites.Remove(ctx, userID, turfID); err != nil {
		log.Printf("favorite: remove failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove favorite failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /api/favorites and returns the user's favorite turfs.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	turfs, err := h.Favorites.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("favorite: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]turfResp, 0, len(turfs))
	for _, t := range turfs {
		out = append(out, toTurfResp(t))
	}
	return c.JSON(http.StatusOK, out)
}
