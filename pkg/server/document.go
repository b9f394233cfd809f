package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"athena/pkg/document"
	"athena/pkg/utils"
)

type actionReq struct {
	Action string `json:"action"`
	Format string `json:"format,omitempty"`
}

// POST /api/action
func (s *Server) handlePostAction(c echo.Context) error {
	var req actionReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	a := ParseAction(req.Action)
	return c.JSON(http.StatusOK, s.Dispatch(c.Request().Context(), a, req.Format))
}

type documentBody struct {
	Markup string `json:"markup"`
}

// GET /api/document
func (s *Server) handleGetDocument(c echo.Context) error {
	return c.JSON(http.StatusOK, documentBody{Markup: s.Surface.Content()})
}

// PUT /api/document
func (s *Server) handlePutDocument(c echo.Context) error {
	var req documentBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	s.Surface.ReplaceContent(req.Markup)
	return c.NoContent(http.StatusNoContent)
}

type appendReq struct {
	Text string `json:"text"`
}

// POST /api/document/append
func (s *Server) handlePostAppend(c echo.Context) error {
	var req appendReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	s.Surface.AppendPlainText(req.Text)
	return c.NoContent(http.StatusNoContent)
}

// OutlineResponse carries the derived structure entries. Message is set
// only when there is nothing to show.
type OutlineResponse struct {
	Entries []document.Entry `json:"entries"`
	Message string           `json:"message,omitempty"`
}

// GET /api/outline
func (s *Server) handleGetOutline(c echo.Context) error {
	entries := document.Extract(s.Surface.Snapshot())
	resp := OutlineResponse{Entries: entries}
	if len(entries) == 0 {
		resp.Message = document.NoStructureMessage
	}
	return c.JSON(http.StatusOK, resp)
}

// ViewResponse is the full presentation snapshot.
type ViewResponse struct {
	View    ViewOptions  `json:"view"`
	Config  EditorConfig `json:"config"`
	Panel   string       `json:"panel"`
	OrgView string       `json:"orgView"`
}

// GET /api/view
func (s *Server) handleGetView(c echo.Context) error {
	s.mu.Lock()
	resp := ViewResponse{View: s.view, Config: s.config, Panel: s.panel, OrgView: s.orgView}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, resp)
}

// GET /api/panel/:panel
func (s *Server) handleGetPanel(c echo.Context) error {
	sug, ok := s.PanelSuggestion(c.Param("panel"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no suggestion for panel")
	}
	return c.JSON(http.StatusOK, sug)
}

// DELETE /api/panel/:panel
func (s *Server) handleClosePanel(c echo.Context) error {
	s.ClosePanel(c.Param("panel"))
	return c.NoContent(http.StatusNoContent)
}

// GET /api/asset?url=...
func (s *Server) handleGetAsset(c echo.Context) error {
	rawURL := c.QueryParam("url")
	if rawURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url is required")
	}
	asset, err := s.Assets.Fetch(c.Request().Context(), rawURL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, utils.ErrJSON(err.Error()))
	}
	contentType := asset.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Blob(http.StatusOK, contentType, asset.Body)
}
