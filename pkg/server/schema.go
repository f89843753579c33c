package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fable/pkg/schema"
)

// GET /api/stories/schema
func (s *Server) handleGetStorySchema(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.StorySchema)
}
