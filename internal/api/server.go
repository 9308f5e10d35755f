// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/nicodishanthj/legacybridge/internal/common"
	"github.com/nicodishanthj/legacybridge/internal/workflow"
)

// Server exposes the conversion workflow over HTTP for the demo UI.
type Server struct {
	router  chi.Router
	manager *workflow.Manager
}

func NewServer(manager *workflow.Manager) *Server {
	srv := &Server{router: chi.NewRouter(), manager: manager}
	srv.routes()
	common.Logger().Info("api: server ready", "gateway", manager.GatewayName())
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/api/upload", s.handleUpload)
	s.router.Get("/api/sources", s.handleSources)
	s.router.Post("/api/analyze", s.handleAnalyze)
	s.router.Post("/api/convert", s.handleConvert)
	s.router.Get("/api/requirements", s.handleRequirements)
	s.router.Get("/api/project/tree", s.handleProjectTree)
	s.router.Get("/api/project/download", s.handleProjectDownload)
	s.router.Post("/api/reset", s.handleReset)
	s.router.Get("/api/logs", s.handleLogs)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
