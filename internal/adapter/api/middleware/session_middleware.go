package middleware

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/response"
)

type SessionMiddleware struct {
	controller *usecase.StateController
}

func NewSessionMiddleware(controller *usecase.StateController) *SessionMiddleware {
	return &SessionMiddleware{
		controller: controller,
	}
}

// RequireReady rejects requests until a session has finished loading.
func (m *SessionMiddleware) RequireReady(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch m.controller.Phase() {
		case usecase.PhaseReady:
			return next(c)
		case usecase.PhaseError:
			return response.Error(c, errors.InvalidState("data could not be loaded; reload the session"))
		default:
			return response.Error(c, errors.InvalidState("no active session"))
		}
	}
}
