package handler

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/response"
)

type ChatHandler struct {
	controller *usecase.StateController
}

func NewChatHandler(controller *usecase.StateController) *ChatHandler {
	return &ChatHandler{
		controller: controller,
	}
}

type selectTopicRequest struct {
	TopicID string `json:"topicId" validate:"required"`
}

type createTopicRequest struct {
	Name      string   `json:"name" validate:"required,max=80"`
	MemberIDs []string `json:"memberIds" validate:"dive,required"`
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

func (h *ChatHandler) SelectTopic(c echo.Context) error {
	var req selectTopicRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.controller.SelectTopic(req.TopicID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, h.controller.SelectedTopic())
}

func (h *ChatHandler) CreateTopic(c echo.Context) error {
	var req createTopicRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	topic, err := h.controller.CreateTopic(c.Request().Context(), usecase.CreateTopicInput{
		Name:      req.Name,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, topic)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	topicID := c.Param("id")

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Validation("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.controller.SendMessage(c.Request().Context(), topicID, req.Text)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) Summarize(c echo.Context) error {
	topicID := c.Param("id")

	summary, err := h.controller.SummarizeTopic(c.Request().Context(), topicID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"topicId": topicID,
		"summary": summary,
	})
}
