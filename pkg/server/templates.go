package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// starterPrompts seed the create screen with ready-made story ideas.
var starterPrompts = []string{
	"Tell a magical story about a brave little explorer who discovers a secret garden where flowers sing and dance.",
	"Create an adventure where a friendly little dragon learns that being different makes him truly special.",
	"Write a bedtime story about a tiny cloud who floats down from the sky to grant wishes to sleeping children.",
	"Tell a tale about a curious penguin who sets sail on a ship made of ice to find the land of eternal sunshine.",
	"Create a story where a small bunny discovers a hidden door in the forest that leads to a world made of candy.",
	"Write about a little star who falls from the sky and goes on a journey to find its way back home.",
	"Tell a story about a playful kitten who finds a magical paintbrush that brings her drawings to life.",
	"Create an adventure where a brave little fish swims through an underwater kingdom to save the coral reef.",
}

// GET /api/templates
func (s *Server) handleGetTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"templates": starterPrompts})
}
