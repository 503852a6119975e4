package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	ioutils "github.com/handiism/song-review-hub/internal/io"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	// HeaderRequestID carries the per-request id on every response.
	HeaderRequestID = "X-Request-ID"

	requestIDKey = "request_id"
	shutdownWait = 5 * time.Second
)

// Covers fetches album cover art. catalog.API implements it.
type Covers interface {
	Album(ctx context.Context, id model.ID) (model.Album, error)
	Cover(ctx context.Context, album model.Album) ([]byte, error)
}

// Server is the browser shell: a gin engine rendering every page
// server-side on top of a view.Manager.
//
// Example usage:
//
//	api := catalog.New(http.NewClient(settings.APIBaseURL))
//	manager := view.NewManager(api, settings.Session())
//
//	srv := web.New(manager, api, web.WithLogger(logger))
//	err := srv.Run(ctx, ":8080")
type Server struct {
	manager      *view.Manager
	covers       Covers
	thumbs       *ioutils.CoverService
	coverMaxSize int
	logger       hclog.Logger
	engine       *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCoverMaxSize bounds cover thumbnails to size x size pixels.
func WithCoverMaxSize(size int) Option {
	return func(s *Server) {
		s.coverMaxSize = size
	}
}

// New builds the server and registers its routes.
func New(manager *view.Manager, covers Covers, opts ...Option) *Server {
	s := &Server{
		manager:      manager,
		covers:       covers,
		thumbs:       ioutils.NewCoverService(),
		coverMaxSize: 600,
		logger:       hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"),
	))
	s.engine.Use(s.requestID, s.accessLog, gin.Recovery(), readFlash)
	s.routes()

	return s
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/", s.home)
	r.GET("/songs", s.songs)
	r.GET("/songs/:id", s.songDetail)
	r.POST("/songs/:id/comments", s.postComment)
	r.POST("/songs/:id/comments/:commentId/delete", s.deleteComment)
	r.GET("/albums", s.albums)
	r.GET("/albums/:id", s.albumDetail)
	r.GET("/add-review", s.addReview)
	r.POST("/add-review", s.submitReview)
	r.GET("/reviews/:id", s.reviewDetail)
	r.POST("/reviews/:id/delete", s.deleteReview)
	r.GET("/reviews/:id/edit", s.editReview)
	r.POST("/reviews/:id/edit", s.submitEdit)
	r.GET("/covers/:id", s.cover)

	r.NoRoute(s.notFound)
}

func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader(HeaderRequestID)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(HeaderRequestID, id)
	c.Next()
}

func (s *Server) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	s.logger.Info("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
		"request_id", c.GetString(requestIDKey),
	)
}
