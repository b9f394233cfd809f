package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"athena/pkg/organizer"
)

// SceneListResponse is the scenes view payload. PendingNew is true exactly
// once after a new-scene request was armed elsewhere, telling the panel to
// open its title prompt.
type SceneListResponse struct {
	Items      []organizer.Scene `json:"items"`
	PendingNew bool              `json:"pendingNew"`
}

// GET /api/org/:view
func (s *Server) handleOrgList(c echo.Context) error {
	switch c.Param("view") {
	case "scenes":
		return c.JSON(http.StatusOK, SceneListResponse{
			Items:      s.Organizer.Scenes.List(),
			PendingNew: s.Organizer.ConsumeSceneRequest(),
		})
	case "timeline":
		return c.JSON(http.StatusOK, s.Organizer.Timeline.List())
	case "characters":
		return c.JSON(http.StatusOK, s.Organizer.Characters.List())
	case "notes":
		return c.JSON(http.StatusOK, s.Organizer.Notes.List())
	case "research":
		return c.JSON(http.StatusOK, s.Organizer.Research.List())
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown collection")
	}
}

// POST /api/org/:view
func (s *Server) handleOrgAdd(c echo.Context) error {
	switch c.Param("view") {
	case "scenes":
		var in organizer.Scene
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		scene, ok := s.Organizer.AddScene(in.Title)
		if !ok {
			// Empty or cancelled title creates nothing.
			return c.NoContent(http.StatusNoContent)
		}
		if in.Description != "" {
			s.Organizer.Scenes.Update(scene.ID, func(sc *organizer.Scene) {
				sc.Description = in.Description
			})
			scene.Description = in.Description
		}
		return c.JSON(http.StatusCreated, scene)
	case "timeline":
		var in organizer.TimelineEvent
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		return c.JSON(http.StatusCreated, s.Organizer.Timeline.Add(in))
	case "characters":
		var in organizer.Character
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		return c.JSON(http.StatusCreated, s.Organizer.Characters.Add(in))
	case "notes":
		var in organizer.Note
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		return c.JSON(http.StatusCreated, s.Organizer.Notes.Add(in))
	case "research":
		var in organizer.ResearchItem
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		return c.JSON(http.StatusCreated, s.Organizer.Research.Add(in))
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown collection")
	}
}

// PUT /api/org/:view/:id replaces the record's fields; identity is kept.
func (s *Server) handleOrgUpdate(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var updated bool
	switch c.Param("view") {
	case "scenes":
		var in organizer.Scene
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		updated = s.Organizer.Scenes.Update(id, func(sc *organizer.Scene) {
			sc.Title, sc.Description = in.Title, in.Description
		})
	case "timeline":
		var in organizer.TimelineEvent
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		updated = s.Organizer.Timeline.Update(id, func(ev *organizer.TimelineEvent) {
			ev.TimeLabel, ev.Description = in.TimeLabel, in.Description
		})
	case "characters":
		var in organizer.Character
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		updated = s.Organizer.Characters.Update(id, func(ch *organizer.Character) {
			ch.Name, ch.Role, ch.Traits = in.Name, in.Role, in.Traits
		})
	case "notes":
		var in organizer.Note
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		updated = s.Organizer.Notes.Update(id, func(n *organizer.Note) {
			n.Content = in.Content
		})
	case "research":
		var in organizer.ResearchItem
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
		}
		updated = s.Organizer.Research.Update(id, func(r *organizer.ResearchItem) {
			r.Content = in.Content
		})
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown collection")
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": updated})
}

// DELETE /api/org/:view/:id. Absent ids are a no-op, not an error.
func (s *Server) handleOrgRemove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var removed bool
	switch c.Param("view") {
	case "scenes":
		removed = s.Organizer.Scenes.Remove(id)
	case "timeline":
		removed = s.Organizer.Timeline.Remove(id)
	case "characters":
		removed = s.Organizer.Characters.Remove(id)
	case "notes":
		removed = s.Organizer.Notes.Remove(id)
	case "research":
		removed = s.Organizer.Research.Remove(id)
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown collection")
	}
	return c.JSON(http.StatusOK, map[string]bool{"removed": removed})
}
