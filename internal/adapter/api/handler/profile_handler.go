package handler

import (
	"bytes"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/infrastructure/storage"
	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/logger"
	"teamsynchub/pkg/response"
)

type ProfileHandler struct {
	controller *usecase.StateController
}

func NewProfileHandler(controller *usecase.StateController) *ProfileHandler {
	return &ProfileHandler{
		controller: controller,
	}
}

type updateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.controller.UpdateProfile(c.Request().Context(), entity.UserPatch{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

// UploadAvatar expects a multipart form with the image in "avatar".
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return response.Error(c, errors.Validation("avatar file is required"))
	}
	if file.Size > storage.MaxAvatarBytes {
		return response.Error(c, errors.Validation(fmt.Sprintf("avatar must be at most %d bytes", storage.MaxAvatarBytes)))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, storage.MaxAvatarBytes+1))
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	if len(data) > storage.MaxAvatarBytes {
		return response.Error(c, errors.Validation(fmt.Sprintf("avatar must be at most %d bytes", storage.MaxAvatarBytes)))
	}

	mime, err := storage.DetectImageType(data)
	if err != nil {
		logger.Debug("Rejected avatar upload %s: %v", file.Filename, err)
		return response.Error(c, errors.Validation("avatar must be a jpeg, png, gif or webp image"))
	}

	user, err := h.controller.UploadAvatar(c.Request().Context(), bytes.NewReader(data), mime.String())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *ProfileHandler) GetAssignedSalesRecords(c echo.Context) error {
	records, err := h.controller.AssignedSalesRecords()
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, records)
}
