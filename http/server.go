// Package http implements the service-mode HTTP surface: a single POST
// extraction endpoint plus liveness and runtime-stats endpoints.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/fwojciec/marrow"
	"github.com/gin-gonic/gin"
)

// Stable machine-readable failure codes for request validation.
const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeMissingHTMLField = "MISSING_HTML_FIELD"
	CodeInvalidHTMLType  = "INVALID_HTML_TYPE"
	CodeEmptyHTML        = "EMPTY_HTML"
	CodeMissingURLField  = "MISSING_URL_FIELD"
	CodeInvalidURLType   = "INVALID_URL_TYPE"
	CodeInvalidURLFormat = "INVALID_URL_FORMAT"
	CodeExtractionError  = "EXTRACTION_ERROR"
	CodeNotFound         = "NOT_FOUND"
)

// DefaultAddr is the default listen address.
const DefaultAddr = ":8676"

// Server serves the extraction API.
type Server struct {
	extractor marrow.PageExtractor
	logger    *slog.Logger
	router    *gin.Engine
	started   time.Time
}

// NewServer creates a Server around the given page extractor.
func NewServer(extractor marrow.PageExtractor, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		extractor: extractor,
		logger:    logger,
		started:   time.Now(),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.POST("/extract", s.handleExtract)
	r.GET("/health", s.handleHealth)
	r.GET("/stats", s.handleStats)
	r.NoRoute(s.handleNotFound)
	s.router = r

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	s.logger.Info("server listening", "addr", addr)
	return s.router.Run(addr)
}

// extractRequest keeps the fields raw so missing, wrong-typed, and empty
// values each get their own failure code.
type extractRequest struct {
	HTML json.RawMessage `json:"html"`
	URL  json.RawMessage `json:"url"`
}

func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, marrow.ErrorEnvelope("request body must be a JSON object", CodeInvalidJSON))
		return
	}

	html, code := stringField(req.HTML, CodeMissingHTMLField, CodeInvalidHTMLType)
	if code == "" && strings.TrimSpace(html) == "" {
		code = CodeEmptyHTML
	}
	if code != "" {
		c.JSON(http.StatusBadRequest, marrow.ErrorEnvelope(fieldMessage("html", code), code))
		return
	}

	rawURL, code := stringField(req.URL, CodeMissingURLField, CodeInvalidURLType)
	if code != "" {
		c.JSON(http.StatusBadRequest, marrow.ErrorEnvelope(fieldMessage("url", code), code))
		return
	}
	if err := marrow.ValidateURL(rawURL); err != nil {
		c.JSON(http.StatusBadRequest, marrow.ErrorEnvelope(marrow.ErrorMessage(err), CodeInvalidURLFormat))
		return
	}

	result, err := s.extractor.ExtractPage(c.Request.Context(), html, marrow.ExtractOptions{URL: rawURL})
	if err != nil {
		c.JSON(http.StatusInternalServerError, marrow.ErrorEnvelope(marrow.ErrorMessage(err), CodeExtractionError))
		return
	}

	c.JSON(http.StatusOK, marrow.SuccessEnvelope(result, rawURL))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"uptimeSeconds":  int(time.Since(s.started).Seconds()),
			"goroutines":     runtime.NumGoroutine(),
			"heapAllocBytes": mem.HeapAlloc,
		},
	})
}

func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, marrow.ErrorEnvelope(
		"endpoint not found: "+c.Request.Method+" "+c.Request.URL.Path,
		CodeNotFound,
	))
}

// requestLogger logs each request with status, size, and duration.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration", time.Since(begin),
		)
	}
}

// stringField decodes a raw JSON field that must be a string, returning the
// matching failure code when it is missing or wrong-typed.
func stringField(raw json.RawMessage, missingCode, typeCode string) (string, string) {
	if len(raw) == 0 {
		return "", missingCode
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", typeCode
	}
	return v, ""
}

func fieldMessage(field string, code string) string {
	switch code {
	case CodeMissingHTMLField, CodeMissingURLField:
		return "missing required field: '" + field + "'"
	case CodeInvalidHTMLType, CodeInvalidURLType:
		return "field '" + field + "' must be a string"
	case CodeEmptyHTML:
		return "field '" + field + "' cannot be empty"
	}
	return "invalid field: '" + field + "'"
}
