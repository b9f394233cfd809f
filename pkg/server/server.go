// Package server exposes the editor over HTTP: one action-dispatch
// endpoint mirroring the menu surface, plus direct endpoints for the
// document, outline, organization collections, covers, and offline assets.
package server

import (
	"context"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"athena/pkg/flight"
	"athena/pkg/gateway"
	"athena/pkg/offline"
	"athena/pkg/organizer"
	"athena/pkg/prompt"
	"athena/pkg/store"
	"athena/pkg/surface"
	"athena/pkg/utils"
)

// AutosaveKey is the storage key holding the full markup snapshot.
const AutosaveKey = "athena_autosave"

type lookupKey struct {
	task prompt.Task
	word string
}

type Server struct {
	Echo      *echo.Echo
	Gateway   *gateway.Gateway
	Organizer *organizer.Organizer
	Surface   *surface.Surface
	Mirror    *surface.Surface
	Store     store.Store
	Assets    *offline.Cache
	CoverDir  string

	lookups *flight.Group[lookupKey, string]

	// mu guards view/config/panel state.
	mu      sync.Mutex
	view    ViewOptions
	config  EditorConfig
	panel   string
	orgView string

	// pmu guards the AI panel registry.
	pmu         sync.Mutex
	generations map[string]uint64
	latest      map[string]Suggestion
}

func NewServer(gw *gateway.Gateway, org *organizer.Organizer, st store.Store, coverDir string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:        e,
		Gateway:     gw,
		Organizer:   org,
		Surface:     surface.New(),
		Mirror:      surface.NewMirror(),
		Store:       st,
		Assets:      offline.NewCache(nil),
		CoverDir:    coverDir,
		view:        DefaultViewOptions(),
		config:      DefaultEditorConfig(),
		orgView:     "scenes",
		generations: make(map[string]uint64),
		latest:      make(map[string]Suggestion),
	}
	s.lookups = flight.NewGroup(s.lookupWord)

	// The split preview tracks the live surface while split view is on.
	s.Surface.OnChange(func() {
		s.mu.Lock()
		split := s.view.SplitView
		s.mu.Unlock()
		if split {
			s.Mirror.ReplaceContent(s.Surface.Content())
		}
	})

	if markup, ok := st.Get(AutosaveKey); ok {
		s.Surface.ReplaceContent(markup)
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.GET("/status", s.handleGetStatus)
	api.POST("/action", s.handlePostAction)

	api.GET("/document", s.handleGetDocument)
	api.PUT("/document", s.handlePutDocument)
	api.POST("/document/append", s.handlePostAppend)
	api.GET("/outline", s.handleGetOutline)
	api.GET("/view", s.handleGetView)

	api.GET("/org/:view", s.handleOrgList)
	api.POST("/org/:view", s.handleOrgAdd)
	api.PUT("/org/:view/:id", s.handleOrgUpdate)
	api.DELETE("/org/:view/:id", s.handleOrgRemove)

	api.POST("/cover", s.handlePostCover)
	api.GET("/panel/:panel", s.handleGetPanel)
	api.DELETE("/panel/:panel", s.handleClosePanel)
	api.GET("/asset", s.handleGetAsset)
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

// Autosave writes the current markup snapshot to the store.
func (s *Server) Autosave() error {
	return s.Store.Set(AutosaveKey, s.Surface.Content())
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")

	saveErr := s.Autosave()
	if err := s.Echo.Shutdown(ctx); err != nil {
		return err
	}
	return saveErr
}
