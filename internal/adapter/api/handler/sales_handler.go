package handler

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/response"
)

type SalesHandler struct {
	controller *usecase.StateController
}

func NewSalesHandler(controller *usecase.StateController) *SalesHandler {
	return &SalesHandler{
		controller: controller,
	}
}

type createSalesRecordRequest struct {
	CustomerName string  `json:"customerName" validate:"required"`
	MaterialName string  `json:"materialName" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	UnitPrice    float64 `json:"unitPrice" validate:"gte=0"`
	Currency     string  `json:"currency" validate:"required,oneof=TRY USD EUR"`
}

type updateSalesRecordRequest struct {
	CustomerName *string  `json:"customerName" validate:"omitempty,min=1"`
	MaterialName *string  `json:"materialName" validate:"omitempty,min=1"`
	Quantity     *float64 `json:"quantity" validate:"omitempty,gte=0"`
	UnitPrice    *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
	Currency     *string  `json:"currency" validate:"omitempty,oneof=TRY USD EUR"`
	AssignedTo   *string  `json:"assignedTo" validate:"omitempty,min=1"`
	Status       *string  `json:"status"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *SalesHandler) GetBoard(c echo.Context) error {
	board, err := h.controller.SalesBoard()
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, board)
}

func (h *SalesHandler) Create(c echo.Context) error {
	var req createSalesRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	record, err := h.controller.CreateSalesRecord(c.Request().Context(), entity.NewSalesRecord{
		CustomerName: req.CustomerName,
		MaterialName: req.MaterialName,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Currency:     entity.Currency(req.Currency),
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, record)
}

func (h *SalesHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateSalesRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	edit := entity.SalesRecordEdit{
		CustomerName: req.CustomerName,
		MaterialName: req.MaterialName,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		AssignedTo:   req.AssignedTo,
	}
	if req.Currency != nil {
		currency := entity.Currency(*req.Currency)
		edit.Currency = &currency
	}
	if req.Status != nil {
		status, err := entity.ParseSalesStatus(*req.Status)
		if err != nil {
			return response.Error(c, err)
		}
		edit.Status = &status
	}

	record, err := h.controller.UpdateSalesRecord(c.Request().Context(), id, edit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, record)
}

func (h *SalesHandler) SetStatus(c echo.Context) error {
	id := c.Param("id")

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	status, err := entity.ParseSalesStatus(req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	record, err := h.controller.SetSalesRecordStatus(c.Request().Context(), id, status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, record)
}

func (h *SalesHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.controller.DeleteSalesRecord(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Sales record deleted successfully",
	})
}

func (h *SalesHandler) Open(c echo.Context) error {
	record, err := h.controller.OpenSalesRecord(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, record)
}

func (h *SalesHandler) Close(c echo.Context) error {
	if err := h.controller.CloseSalesRecord(); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Sales record closed",
	})
}
