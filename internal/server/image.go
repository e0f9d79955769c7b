package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jarvis-tutor/jarvis/provider"
)

// ImageHandler is a thin passthrough to the provider's image endpoint.
type ImageHandler struct {
	LLM provider.Provider
}

func (h *ImageHandler) Register(g *echo.Group) {
	g.POST("/image", h.generate)
}

func (h *ImageHandler) generate(c echo.Context) error {
	var req imageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt must not be empty")
	}

	img, err := h.LLM.GenerateImage(c.Request().Context(), req.Prompt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, imageResponse{MimeType: img.MimeType, Data: img.Data})
}
