package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jarvis-tutor/jarvis/internal/tutor"
)

// Asker is the orchestrator surface the handlers depend on.
type Asker interface {
	Ask(ctx context.Context, req tutor.AskRequest) (tutor.Outcome, error)
	RouteAsk(ctx context.Context, question string) (tutor.Persona, string, error)
}

type AskHandler struct {
	Orch Asker
}

func (h *AskHandler) Register(g *echo.Group) {
	g.POST("/ask", h.ask)
	g.POST("/agent", h.agent)
}

func (h *AskHandler) ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	out, err := h.Orch.Ask(c.Request().Context(), tutor.AskRequest{
		Question:        req.Question,
		EnableWebSearch: req.EnableWebSearch,
		Category:        tutor.Category(req.Category),
	})
	if err != nil {
		switch {
		case errors.Is(err, tutor.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, tutor.ErrGenerationFailed):
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		default:
			return err
		}
	}
	return c.JSON(http.StatusOK, toAskResponse(out))
}

func (h *AskHandler) agent(c echo.Context) error {
	var req agentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	persona, answer, err := h.Orch.RouteAsk(c.Request().Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, tutor.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, tutor.ErrGenerationFailed):
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		default:
			return err
		}
	}
	return c.JSON(http.StatusOK, agentResponse{Agent: persona.Name, Answer: answer})
}
