package handler

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/response"
)

type ViewHandler struct {
	controller *usecase.StateController
}

func NewViewHandler(controller *usecase.StateController) *ViewHandler {
	return &ViewHandler{
		controller: controller,
	}
}

type setViewRequest struct {
	View string `json:"view" validate:"required,oneof=chat sales shipments profile"`
}

func (h *ViewHandler) SetView(c echo.Context) error {
	var req setViewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.controller.SetView(usecase.View(req.View)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"view": req.View})
}

func (h *ViewHandler) Back(c echo.Context) error {
	view, err := h.controller.BackFromProfile()
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]usecase.View{"view": view})
}
