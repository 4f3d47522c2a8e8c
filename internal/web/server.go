// Package web serves a page as HTML. Every browser gets its own session and
// therefore its own selections; file changes are pushed over a websocket so
// open pages reload themselves.
package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lucky7xz/datacard/internal/datacard"
	"github.com/lucky7xz/datacard/internal/page"
	"github.com/lucky7xz/datacard/internal/watch"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	sessionCookie = "datacard_session"
	idleTimeout   = 12 * time.Hour
)

// Options configures a Server.
type Options struct {
	// Load reads the page. It runs once in New and again on every change.
	Load func() (*page.Doc, error)
	// Theme names the palette for the page chrome.
	Theme string
}

// Server hosts one page for many browsers.
type Server struct {
	load  func() (*page.Doc, error)
	theme string

	mu      sync.RWMutex
	doc     *page.Doc
	loadErr error

	sessions *Manager
	hub      *Hub
}

// New loads the page and builds a server for it.
func New(opts Options) (*Server, error) {
	if opts.Load == nil {
		return nil, errors.New("web: no page loader")
	}
	doc, err := opts.Load()
	if err != nil {
		return nil, err
	}
	return &Server{
		load:     opts.Load,
		theme:    opts.Theme,
		doc:      doc,
		sessions: NewManager(idleTimeout),
		hub:      NewHub(),
	}, nil
}

// Hub returns the live reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// Sessions returns the session manager.
func (s *Server) Sessions() *Manager { return s.sessions }

// Reload reads the page again and tells browsers to refresh. A broken page
// keeps the last good one loaded; the error is shown above it.
func (s *Server) Reload() error {
	doc, err := s.load()
	s.mu.Lock()
	if err == nil {
		s.doc = doc
	}
	s.loadErr = err
	s.mu.Unlock()
	if err != nil {
		zap.L().Warn("page reload failed", zap.Error(err))
	} else {
		zap.L().Info("page reloaded")
	}
	s.hub.Broadcast()
	return err
}

func (s *Server) current() (*page.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.loadErr
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/", s.handlePage)
	r.Post("/grids/{key}/cards/{index}", s.handleActivate)
	r.Get("/api/grids/{key}/selection", s.handleSelection)
	r.Handle("/live", s.hub)
	return r
}

// session returns the browser's session, creating one and setting the
// cookie when it has none.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess := s.sessions.Get(c.Value); sess != nil {
			return sess
		}
	}
	sess := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	zap.L().Debug("session created", zap.String("session", sess.ID))
	return sess
}

// rerun renders the page for a session, applying ev if set.
func (s *Server) rerun(sess *Session, ev *datacard.Event) ([]page.Block, *page.Doc, error) {
	doc, _ := s.current()
	var (
		blocks []page.Block
		err    error
	)
	sess.Do(func(p *datacard.Page) {
		blocks, err = doc.Render(p, ev)
	})
	return blocks, doc, err
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	blocks, doc, err := s.rerun(sess, nil)

	view := newPageView(doc, blocks, s.theme)
	_, loadErr := s.current()
	if err := errors.Join(loadErr, err); err != nil {
		view.Error = err.Error()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, view); err != nil {
		zap.L().Warn("render page", zap.Error(err))
	}
}

// gridKey reads the {key} path parameter. Keys are arbitrary strings, so
// links carry them path-escaped.
func gridKey(r *http.Request) (string, error) {
	return url.PathUnescape(chi.URLParam(r, "key"))
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	key, err := gridKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KEY", "invalid grid key")
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INDEX", "invalid card index: "+chi.URLParam(r, "index"))
		return
	}
	doc, _ := s.current()
	if !hasGrid(doc, key) {
		writeError(w, http.StatusNotFound, "UNKNOWN_GRID", "unknown grid: "+key)
		return
	}

	sess := s.session(w, r)
	if _, _, err := s.rerun(sess, &datacard.Event{Key: key, Index: index}); err != nil {
		writeError(w, http.StatusInternalServerError, "RENDER_FAILED", err.Error())
		return
	}
	http.Redirect(w, r, "/#grid-"+url.PathEscape(key), http.StatusSeeOther)
}

// selectionResponse is the body of GET /api/grids/{key}/selection.
type selectionResponse struct {
	Key      string `json:"key"`
	Selected bool   `json:"selected"`
	Index    int    `json:"index"`
	Record   any    `json:"record"`
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	key, err := gridKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KEY", "invalid grid key")
		return
	}
	doc, _ := s.current()
	if !hasGrid(doc, key) {
		writeError(w, http.StatusNotFound, "UNKNOWN_GRID", "unknown grid: "+key)
		return
	}

	sess := s.session(w, r)
	blocks, _, err := s.rerun(sess, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "RENDER_FAILED", err.Error())
		return
	}
	resp := selectionResponse{Key: key, Index: -1}
	if res, ok := page.Find(blocks, key); ok && res.OK {
		resp.Selected = true
		resp.Record = res.Selected
		resp.Index = res.Grid.Selected
	}
	writeJSON(w, http.StatusOK, resp)
}

// hasGrid reports whether the page has a grid with key. Grids without an
// explicit key are addressed by their implicit positional key.
func hasGrid(doc *page.Doc, key string) bool {
	if doc == nil {
		return false
	}
	for i, sec := range doc.Grids() {
		k := sec.Grid.Key
		if k == "" {
			k = datacard.ImplicitKey(i)
		}
		if k == key {
			return true
		}
	}
	return false
}

// Run serves until ctx is done. With watchFiles set, changes to the page
// or its data files reload it.
func (s *Server) Run(ctx context.Context, addr string, watchFiles bool) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("serving page", zap.String("addr", addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				s.sessions.Cleanup()
			}
		}
	})
	if watchFiles {
		g.Go(func() error {
			s.watchLoop(gctx)
			return nil
		})
	}
	return g.Wait()
}

// watchLoop reloads the page on file changes and follows the page's file
// set when a reload changes it.
func (s *Server) watchLoop(ctx context.Context) {
	for ctx.Err() == nil {
		doc, _ := s.current()
		files := doc.Files()
		if len(files) == 0 {
			return
		}
		w, err := watch.New(files)
		if err != nil {
			zap.L().Warn("could not watch page files", zap.Error(err))
			return
		}
		for {
			if _, err := w.Next(ctx); err != nil {
				break
			}
			_ = s.Reload()
			if next, _ := s.current(); !slices.Equal(next.Files(), files) {
				break
			}
		}
		_ = w.Close()
	}
}
