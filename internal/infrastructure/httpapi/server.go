package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newscred/internal/domain"
	"newscred/internal/metrics"
	"newscred/internal/ports"
)

// ArticleService is the slice of the submission workflow the API needs.
type ArticleService interface {
	Submit(ctx context.Context, title, content string, submitterID int64) (string, error)
	GetArticle(ctx context.Context, hashID string) (domain.Article, error)
}

// Server exposes the submission API over HTTP.
type Server struct {
	engine  *gin.Engine
	service ArticleService
	logger  *slog.Logger
}

type submitRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	SubmitterID int64  `json:"submitter_id"`
}

// NewServer builds the gin router with all routes registered.
func NewServer(service ArticleService, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine, service: service, logger: logger}

	engine.Use(s.observe)
	engine.GET("/healthz", s.health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.POST("/articles", s.submitArticle)
	api.GET("/articles/:hash", s.getArticle)

	return s
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) submitArticle(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	hashID, err := s.service.Submit(c.Request.Context(), req.Title, req.Content, req.SubmitterID)
	if err != nil {
		s.logger.Error("submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not accept submission"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"hash_id": hashID,
		"status":  string(domain.StatusPendingAnalysis),
	})
}

func (s *Server) getArticle(c *gin.Context) {
	article, err := s.service.GetArticle(c.Request.Context(), c.Param("hash"))
	if errors.Is(err, ports.ErrArticleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	if err != nil {
		s.logger.Error("article lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	resp := gin.H{
		"hash_id": article.HashID,
		"title":   article.Title,
		"status":  string(article.Status),
	}
	if article.Scored {
		resp["credibility_score"] = article.Score
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) observe(c *gin.Context) {
	c.Next()
	metrics.HTTPRequestsTotal.WithLabelValues(
		c.Request.Method,
		c.FullPath(),
		strconv.Itoa(c.Writer.Status()),
	).Inc()
}
