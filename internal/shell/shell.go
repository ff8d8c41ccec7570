// Package shell is the application container of the book. It renders the
// sidebar, header bar, page body and chapter pagination for every request and
// keeps each client's sidebar visibility in a cookie or its scroll session.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/cryptobook/internal/logging"
	"github.com/ziadkadry99/cryptobook/internal/metrics"
	"github.com/ziadkadry99/cryptobook/internal/pager"
	"github.com/ziadkadry99/cryptobook/internal/pages"
	"github.com/ziadkadry99/cryptobook/internal/routes"
	"github.com/ziadkadry99/cryptobook/internal/sidebar"
)

// DefaultTitle is shown in the header bar when no title is configured.
const DefaultTitle = "Cryptography"

// SidebarCookie carries one client's sidebar visibility between requests.
// Anything but "closed", including no cookie at all, means open.
const SidebarCookie = "cryptobook_sidebar"

// Catalogue resolves page ids to page bodies and runs their forms.
type Catalogue interface {
	Lookup(id string) (*pages.Page, bool)
	Submit(ctx context.Context, pageID, formID, value string) (pages.Result, error)
}

// Options configures a Shell. Every field is optional.
type Options struct {
	Title   string
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Shell renders the book. It is safe for concurrent use.
type Shell struct {
	routes    *routes.Model
	flat      []routes.FlatRoute
	catalogue Catalogue
	title     string
	log       *slog.Logger
	metrics   *metrics.Metrics
	tmpl      *template.Template
}

// New builds a shell over the route model. Every page id named by a route must
// exist in the catalogue.
func New(model *routes.Model, catalogue Catalogue, opts Options) (*Shell, error) {
	flat := model.Flatten()
	for _, r := range flat {
		if r.Page == "" {
			continue
		}
		if _, ok := catalogue.Lookup(r.Page); !ok {
			return nil, fmt.Errorf("route %s: %w: %q", r.Path, pages.ErrUnknownPage, r.Page)
		}
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	s := &Shell{
		routes:    model,
		flat:      flat,
		catalogue: catalogue,
		title:     opts.Title,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		tmpl:      tmpl,
	}
	if s.title == "" {
		s.title = DefaultTitle
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	return s, nil
}

// SidebarOpen reports whether the client behind r has the sidebar shown.
// Every new client starts open.
func SidebarOpen(r *http.Request) bool {
	c, err := r.Cookie(SidebarCookie)
	return err != nil || c.Value != "closed"
}

func setSidebarCookie(w http.ResponseWriter, open bool) {
	value := "open"
	if !open {
		value = "closed"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SidebarCookie,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Shell) sidebarToggled(open bool) {
	s.metrics.SidebarToggled()
	s.log.Debug("sidebar toggled", "open", open)
}

// RegisterRoutes mounts the book onto r: one handler per route (prefix routes
// also match everything beneath them), the no-script sidebar toggle, the
// scroll stream, static assets and the not-found page.
func (s *Shell) RegisterRoutes(r chi.Router) {
	for _, route := range s.flat {
		h := s.pageHandler(route)
		r.Get(route.Path, h)
		r.Post(route.Path, h)
		if !route.Exact {
			prefix := strings.TrimSuffix(route.Path, "/") + "/*"
			r.Get(prefix, h)
			r.Post(prefix, h)
		}
	}

	r.Post("/sidebar/toggle", s.handleToggle)
	r.Get("/ws/scroll", s.handleScroll)
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/script.js", serveAsset("application/javascript; charset=utf-8", jsContent))
	r.NotFound(s.handleNotFound)
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title        string
	PageTitle    string
	Path         string
	SidebarClass string
	Sidebar      template.HTML
	Page         *pages.Page
	Results      map[string]*pages.Result
	Values       map[string]string
	Pager        pager.Links
	NotFound     bool
}

// chrome fills in everything that depends only on the current location and
// the client's sidebar state.
func (s *Shell) chrome(r *http.Request) pageData {
	current := r.URL.Path
	view := sidebar.Build(s.routes, SidebarOpen(r), current)
	return pageData{
		Title:        s.title,
		Path:         current,
		SidebarClass: view.Class(),
		Sidebar:      view.HTML(),
		Pager:        pager.Resolve(s.flat, current),
	}
}

func (s *Shell) pageHandler(route routes.FlatRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := s.chrome(r)
		data.PageTitle = route.Label
		if route.Page != "" {
			data.Page, _ = s.catalogue.Lookup(route.Page)
		}

		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}
			formID := r.PostForm.Get("form")
			value := r.PostForm.Get("value")

			res, err := s.catalogue.Submit(r.Context(), route.Page, formID, value)
			if errors.Is(err, pages.ErrUnknownPage) || errors.Is(err, pages.ErrUnknownForm) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if err != nil {
				s.log.Error("form submission failed", "path", route.Path, "form", formID, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			s.log.Info("form submitted", "page", route.Page, "form", formID, "failed", res.Failed)
			data.Results = map[string]*pages.Result{formID: &res}
			data.Values = map[string]string{formID: value}
		}

		s.metrics.PageView(route.Path)
		s.render(w, http.StatusOK, data)
	}
}

func (s *Shell) handleNotFound(w http.ResponseWriter, r *http.Request) {
	data := s.chrome(r)
	data.PageTitle = "Page not found"
	data.NotFound = true
	data.Pager = pager.Links{}

	s.metrics.PageView("not_found")
	s.render(w, http.StatusNotFound, data)
}

// handleToggle is the form fallback for browsers without the scroll stream.
// It flips the cookie of the requesting client only.
func (s *Shell) handleToggle(w http.ResponseWriter, r *http.Request) {
	open := !SidebarOpen(r)
	setSidebarCookie(w, open)
	s.sidebarToggled(open)
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

func (s *Shell) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		s.log.Error("rendering page", "path", data.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// backTo returns the local path of the referring page, or "/".
func backTo(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, `\`) {
		return "/"
	}
	return u.Path
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}
