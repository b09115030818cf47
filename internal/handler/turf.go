package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pitchside/turf-booking/internal/model"
	"github.com/pitchside/turf-booking/internal/repository"
)

// TurfHandler exposes the turf catalogue: public browse/search plus admin
// management.  Route guards (JWT + admin role) are applied by the router;
// the handler only assumes them for the mutating endpoints.
type TurfHandler struct {
	Turfs *repository.TurfRepo
}

func NewTurfHandler(turfs *repository.TurfRepo) *TurfHandler {
	return &TurfHandler{Turfs: turfs}
}

type turfReq struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Sports       []string `json:"sports"`
	Rating       float64  `json:"rating"`
	PricePerHour uint32   `json:"pricePerHour"`
	ImageURL     string   `json:"imageUrl"`
}

type turfResp struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Sports       []string `json:"sports"`
	Rating       float64  `json:"rating"`
	PricePerHour uint32   `json:"pricePerHour"`
	ImageURL     string   `json:"imageUrl"`
}

func toTurfResp(t *model.Turf) turfResp {
	return turfResp{
		ID:           t.ID,
		Name:         t.Name,
		Location:     t.Location,
		Sports:       t.SportsList(),
		Rating:       t.Rating,
		PricePerHour: t.PricePerHour,
		ImageURL:     t.ImageURL,
	}
}

// List handles GET /api/turfs with optional ?sport=, ?location= and ?q=
// filters.  Results are ordered by rating and served from the response
// cache when one is configured.
func (h *TurfHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	turfs, err := h.Turfs.Search(ctx, repository.TurfFilter{
		Sport:    c.QueryParam("sport"),
		Location: c.QueryParam("location"),
		Query:    c.QueryParam("q"),
	})
	if err != nil {
		log.Printf("turf: search failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	out := make([]turfResp, 0, len(turfs))
	for _, t := range turfs {
		out = append(out, toTurfResp(t))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/turfs/:id.
func (h *TurfHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	t, err := h.Turfs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		log.Printf("turf: lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toTurfResp(t))
}

// Create handles POST /api/turfs (admin only).
func (h *TurfHandler) Create(c echo.Context) error {
	var req turfReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and location required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	t := &model.Turf{
		Name:         req.Name,
		Location:     req.Location,
		Sports:       model.JoinSports(req.Sports),
		Rating:       req.Rating,
		PricePerHour: req.PricePerHour,
		ImageURL:     req.ImageURL,
	}
	if err := h.Turfs.Create(ctx, t); err != nil {
		log.Printf("turf: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create turf failed"})
	}
	return c.JSON(http.StatusCreated, toTurfResp(t))
}

// Update handles PUT /api/turfs/:id (admin only).
func (h *TurfHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}
	var req turfReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and location required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	t := &model.Turf{
		ID:           id,
		Name:         req.Name,
		Location:     req.Location,
		Sports:       model.JoinSports(req.Sports),
		Rating:       req.Rating,
		PricePerHour: req.PricePerHour,
		ImageURL:     req.ImageURL,
	}
	if err := h.Turfs.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		log.Printf("turf: update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update turf failed"})
	}
	return c.JSON(http.StatusOK, toTurfResp(t))
}

// Delete handles DELETE /api/turfs/:id (admin only).  A turf with
// upcoming bookings cannot be removed and answers 409.
func (h *TurfHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid turf id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Turfs.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrTurfNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "turf has upcoming bookings"})
		default:
			log.Printf("turf: delete failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete turf failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
