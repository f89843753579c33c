package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fable/pkg/story"
	"fable/pkg/utils"
)

// POST /api/stories
func (s *Server) handlePostStory(c echo.Context) error {
	var req story.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	st, err := s.Stories.CreateStory(c.Request().Context(), req)
	if err != nil {
		// Only cancellation reaches here; nothing is persisted.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("story creation failed"))
	}

	s.Store.Add(st)
	return c.JSON(http.StatusCreated, st)
}

// GET /api/stories
func (s *Server) handleGetStories(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Store.List())
}

// GET /api/stories/:id
func (s *Server) handleGetStory(c echo.Context) error {
	st, ok := s.Store.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, utils.ErrJSON("story not found"))
	}
	return c.JSON(http.StatusOK, st)
}

// DELETE /api/stories
func (s *Server) handleDeleteStories(c echo.Context) error {
	s.Store.Reset()
	if err := s.Store.Save(); err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("failed to persist reset"))
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Fable Story API",
		"status":  "ok",
	})
}
