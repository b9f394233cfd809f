package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Athena Editor API",
		"status":  "ok",
	})
}

// StatusResponse feeds the status bar.
type StatusResponse struct {
	Words      int    `json:"words"`
	Chars      int    `json:"chars"`
	Tokens     int    `json:"tokens"`
	Stage      string `json:"stage"`
	Configured bool   `json:"configured"`
}

func (s *Server) handleGetStatus(c echo.Context) error {
	words, chars, tokens := s.Surface.Counts()
	stage := "Escrevendo..."
	if chars < 100 {
		stage = "Rascunho Inicial"
	}
	return c.JSON(http.StatusOK, StatusResponse{
		Words:      words,
		Chars:      chars,
		Tokens:     tokens,
		Stage:      stage,
		Configured: s.Gateway.Configured(),
	})
}
