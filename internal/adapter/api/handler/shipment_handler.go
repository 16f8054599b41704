package handler

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/listview"
	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/response"
)

type ShipmentHandler struct {
	controller *usecase.StateController
}

func NewShipmentHandler(controller *usecase.StateController) *ShipmentHandler {
	return &ShipmentHandler{
		controller: controller,
	}
}

type createShipmentRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Product      string `json:"product" validate:"required"`
	QuantityKg   int    `json:"quantityKg" validate:"gte=0"`
	VehiclePlate string `json:"vehiclePlate" validate:"required"`
	ShipmentDate string `json:"shipmentDate" validate:"required,datetime=2006-01-02"`
}

type updateShipmentRequest struct {
	CustomerName *string `json:"customerName"`
	Product      *string `json:"product"`
	QuantityKg   *int    `json:"quantityKg" validate:"omitempty,gte=0"`
	VehiclePlate *string `json:"vehiclePlate"`
	ShipmentDate *string `json:"shipmentDate" validate:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status"`
}

type filterRequest struct {
	Query  string `json:"q"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status string `json:"status"`
}

type sortRequest struct {
	Key string `json:"key" validate:"required"`
}

func (h *ShipmentHandler) GetView(c echo.Context) error {
	view, err := h.controller.ShipmentView()
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

// SetFilter replaces the whole table filter; empty fields clear a criterion.
func (h *ShipmentHandler) SetFilter(c echo.Context) error {
	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	filter := listview.ShipmentFilter{Query: req.Query, Date: req.Date}
	if req.Status != "" {
		status, err := entity.ParseShipmentStatus(req.Status)
		if err != nil {
			return response.Error(c, err)
		}
		filter.Status = status
	}
	if err := h.controller.SetShipmentFilter(filter); err != nil {
		return response.Error(c, err)
	}

	view, err := h.controller.ShipmentView()
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *ShipmentHandler) ToggleSort(c echo.Context) error {
	var req sortRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	key, err := listview.ParseSortKey(req.Key)
	if err != nil {
		return response.Error(c, err)
	}

	if _, err := h.controller.ToggleShipmentSort(key); err != nil {
		return response.Error(c, err)
	}
	view, err := h.controller.ShipmentView()
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shipment, err := h.controller.CreateShipment(c.Request().Context(), entity.NewShipment{
		CustomerName: req.CustomerName,
		Product:      req.Product,
		QuantityKg:   req.QuantityKg,
		VehiclePlate: req.VehiclePlate,
		ShipmentDate: req.ShipmentDate,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, shipment)
}

func (h *ShipmentHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	patch := entity.ShipmentPatch{
		CustomerName: req.CustomerName,
		Product:      req.Product,
		QuantityKg:   req.QuantityKg,
		VehiclePlate: req.VehiclePlate,
		ShipmentDate: req.ShipmentDate,
	}
	if req.Status != nil {
		status, err := entity.ParseShipmentStatus(*req.Status)
		if err != nil {
			return response.Error(c, err)
		}
		patch.Status = &status
	}

	shipment, err := h.controller.UpdateShipment(c.Request().Context(), id, patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, shipment)
}

func (h *ShipmentHandler) SetStatus(c echo.Context) error {
	id := c.Param("id")

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	status, err := entity.ParseShipmentStatus(req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	shipment, err := h.controller.SetShipmentStatus(c.Request().Context(), id, status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, shipment)
}

func (h *ShipmentHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.controller.DeleteShipment(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Shipment deleted successfully",
	})
}

func (h *ShipmentHandler) Edit(c echo.Context) error {
	shipment, err := h.controller.EditShipment(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, shipment)
}

func (h *ShipmentHandler) CancelEdit(c echo.Context) error {
	if err := h.controller.CancelShipmentEdit(); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Shipment edit cancelled",
	})
}
