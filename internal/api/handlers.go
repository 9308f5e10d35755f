// File path: internal/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nicodishanthj/legacybridge/internal/archive"
	"github.com/nicodishanthj/legacybridge/internal/collector"
	"github.com/nicodishanthj/legacybridge/internal/common"
	"github.com/nicodishanthj/legacybridge/internal/gateway"
	"github.com/nicodishanthj/legacybridge/internal/workflow"
)

type uploadResponse struct {
	Uploaded int                    `json:"uploaded"`
	Total    int                    `json:"total"`
	Files    []collector.SourceFile `json:"files"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	const maxMemory = 32 << 20 // in-memory multipart parts
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		logger.Warn("api: upload form parse failed", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to parse upload form: %w", err))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	form := r.MultipartForm
	if form == nil || len(form.File["files"]) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("no files supplied in field 'files'"))
		return
	}
	contents := make(map[string]string, len(form.File["files"]))
	for _, header := range form.File["files"] {
		file, err := header.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("open upload %s: %w", header.Filename, err))
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("read upload %s: %w", header.Filename, err))
			return
		}
		contents[header.Filename] = string(data)
	}
	added := s.manager.AddSources(contents)
	logger.Info("api: upload accepted", "files", len(added))
	writeJSON(w, http.StatusOK, uploadResponse{
		Uploaded: len(added),
		Total:    len(s.manager.Sources()),
		Files:    added,
	})
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"files": s.manager.Sources()})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	document, err := s.manager.Analyze(r.Context())
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, workflow.ErrNoSources) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, document)
}

type convertRequest struct {
	TargetLanguage string `json:"targetLanguage"`
}

type convertResponse struct {
	Identity   interface{}     `json:"identity"`
	Tree       []*archive.Node `json:"tree"`
	Files      int             `json:"files"`
	Notes      string          `json:"conversionNotes,omitempty"`
	Issues     interface{}     `json:"potentialIssues,omitempty"`
	Functional interface{}     `json:"functionalTests,omitempty"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if r.Body != nil {
		// An empty body selects the configured default target.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
			return
		}
	}
	tree, result, err := s.manager.Convert(r.Context(), req.TargetLanguage)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, workflow.ErrNotAnalyzed) {
			status = http.StatusConflict
		} else if errors.Is(err, gateway.ErrUnavailable) {
			status = http.StatusBadGateway
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{
		Identity:   tree.Identity,
		Tree:       archive.BuildTree(tree),
		Files:      tree.Len(),
		Notes:      result.ConversionNotes,
		Issues:     result.PotentialIssues,
		Functional: result.FunctionalTests,
	})
}

func (s *Server) handleRequirements(w http.ResponseWriter, r *http.Request) {
	document, err := s.manager.Requirements()
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, document)
}

func (s *Server) handleProjectTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.manager.Tree()
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	if path := strings.TrimSpace(r.URL.Query().Get("path")); path != "" {
		content, ok := tree.Get(path)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Errorf("no file at %s", path))
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"path": path, "content": content})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"identity": tree.Identity,
		"tree":     archive.BuildTree(tree),
		"expanded": tree.ExpandedDirs(),
		"files":    tree.Len(),
	})
}

func (s *Server) handleProjectDownload(w http.ResponseWriter, r *http.Request) {
	if _, err := s.manager.Tree(); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	name := s.manager.ArchiveName()
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := s.manager.Zip(w); err != nil {
		// Headers are already written; nothing left to surface but a log.
		common.Logger().Error("api: zip stream failed", "error", err)
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.manager.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": common.LogEntries()})
}
