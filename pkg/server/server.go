package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fable/pkg/store"
	"fable/pkg/story"
)

type Server struct {
	Echo    *echo.Echo
	Stories *story.Service
	Store   *store.Stories
}

func NewServer(svc *story.Service, st *store.Stories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:    e,
		Stories: svc,
		Store:   st,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.POST("/stories", s.handlePostStory)      // generate and persist a story
	api.GET("/stories", s.handleGetStories)      // full collection, newest first
	api.GET("/stories/schema", s.handleGetStorySchema)
	api.GET("/stories/:id", s.handleGetStory)
	api.DELETE("/stories", s.handleDeleteStories) // full-store reset
	api.GET("/templates", s.handleGetTemplates)   // starter prompts for the create screen
}

func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	saveErr := s.Store.Save()
	if err := s.Echo.Shutdown(ctx); err != nil {
		return err
	}
	return saveErr
}
