package handler

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/response"
)

type SessionHandler struct {
	controller *usecase.StateController
}

func NewSessionHandler(controller *usecase.StateController) *SessionHandler {
	return &SessionHandler{
		controller: controller,
	}
}

// Password is accepted for form compatibility and never checked.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	state, err := h.controller.Login(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, state)
}

func (h *SessionHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	state, err := h.controller.SignUp(c.Request().Context(), usecase.SignUpInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, state)
}

func (h *SessionHandler) Logout(c echo.Context) error {
	h.controller.Logout()
	return response.Success(c, h.controller.Snapshot())
}

func (h *SessionHandler) Reload(c echo.Context) error {
	h.controller.Reload()
	return response.Success(c, h.controller.Snapshot())
}

func (h *SessionHandler) GetState(c echo.Context) error {
	return response.Success(c, h.controller.Snapshot())
}
