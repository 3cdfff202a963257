// Package web serves the portfolio pages, HTMX fragments, the tour socket
// and the admin area.
package web

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/analytics"
	"github.com/tauqeerkhan/portfolio/internal/chat"
	"github.com/tauqeerkhan/portfolio/internal/contact"
	"github.com/tauqeerkhan/portfolio/internal/content"
	"github.com/tauqeerkhan/portfolio/internal/metrics"
	"github.com/tauqeerkhan/portfolio/internal/tourws"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Inbox lists contact messages kept locally.
type Inbox interface {
	List(ctx context.Context, limit int) ([]contact.Message, error)
	Count(ctx context.Context) (int64, error)
}

type Options struct {
	Log            *zap.Logger
	DefaultVariant string
	AllowedOrigins []string
	Metrics        bool
	// Retention is how long visits are kept by the privacy cleanup.
	Retention time.Duration

	Contact *contact.Service
	Inbox   Inbox
	Chat    *chat.Bot
	Tracker *analytics.Tracker
	Admin   *AdminAuth
	Tour    *tourws.Handler
}

type Server struct {
	opts   Options
	log    *zap.Logger
	engine *gin.Engine
}

func New(opts Options) (*Server, error) {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.DefaultVariant == "" {
		opts.DefaultVariant = "developer"
	}
	if _, err := content.Lookup(opts.DefaultVariant); err != nil {
		return nil, err
	}

	s := &Server{opts: opts, log: opts.Log.Named("web")}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(RequestID(), GinZapLogger(s.log), gin.Recovery())
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	if opts.Tracker != nil {
		r.Use(VisitorTracking(opts.Tracker, s.log))
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	if opts.Metrics {
		metrics.Instrument(r)
	}

	s.engine = r
	s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowOrigins = []string{"http://localhost:8080"}
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "HX-Request", "HX-Target", "HX-Current-URL"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

func (s *Server) routes() {
	r := s.engine

	health := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }
	r.GET("/health", health)
	r.HEAD("/health", health)

	r.GET("/", s.index)
	r.GET("/sections/:name", s.section)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)
	r.POST("/chat", s.askChat)
	r.GET("/api/tour/steps", s.tourSteps)
	if s.opts.Tour != nil {
		r.GET("/ws/tour", s.opts.Tour.Serve)
	}

	s.adminRoutes()
}

// variant picks the content variant from the query or form, falling back to
// the configured default.
func (s *Server) variant(c *gin.Context) (*content.Variant, bool) {
	key := c.Query("variant")
	if key == "" {
		key = c.PostForm("variant")
	}
	if key == "" {
		key = s.opts.DefaultVariant
	}
	v, err := content.Lookup(key)
	if err != nil {
		return nil, false
	}
	return v, true
}

// wantsJSON reports whether the client asked for JSON rather than an HTMX
// fragment.
func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		c.ContentType() == "application/json"
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
	"sectionClass": func(id string) string { return id + "-section" },
	"view":         newSectionView,
}

// sectionView is what the section template renders. The about section also
// carries the variant's about paragraphs.
type sectionView struct {
	content.Section
	About []string
}

func newSectionView(v *content.Variant, sec content.Section) sectionView {
	view := sectionView{Section: sec}
	if sec.ID == "about" {
		view.About = v.About
	}
	return view
}
