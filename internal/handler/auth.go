package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/pitchside/turf-booking/internal/middleware"
	"github.com/pitchside/turf-booking/internal/service"
)

// AuthHandler translates HTTP requests into auth service calls and maps
// the service's error taxonomy onto HTTP statuses.  It performs no
// business logic of its own.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// ----- DTOs -----

type registerReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"` // optional: user | admin
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResp is the success body of register and login: the client-facing
// user view plus the bearer token it should present from now on.
type authResp struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// Register handles POST /api/auth/register.  On success it answers 201
// with the new user and a token; a taken email answers 409 and malformed
// input 400.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	user, tok, err := h.Auth.Register(ctx, service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrDuplicateUser):
			return c.JSON(http.StatusConflict, echo.Map{"error": "user already exists"})
		default:
			log.Printf("auth: register failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
		}
	}

	return c.JSON(http.StatusCreated, authResp{User: user, Token: tok.Token})
}

// Login handles POST /api/auth/login.  Unknown email and wrong password
// produce the identical 401 body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	user, tok, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		default:
			log.Printf("auth: login failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
		}
	}

	return c.JSON(http.StatusOK, authResp{User: user, Token: tok.Token})
}

// Me handles GET /api/auth/me.  The identity comes exclusively from the
// verified bearer token placed in context by the JWT middleware; a valid
// token whose account has since been removed answers 404.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	user, err := h.Auth.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		log.Printf("auth: profile lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "profile lookup failed"})
	}

	return c.JSON(http.StatusOK, user)
}

// reqContext bounds DB work to 5 seconds past whatever the transport
// already enforces.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
