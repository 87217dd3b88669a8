package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/mahmoud/cv-studio/internal/importer"
	"github.com/mahmoud/cv-studio/internal/rendering"
	"github.com/mahmoud/cv-studio/internal/scoring"
	"github.com/mahmoud/cv-studio/internal/store"
	"github.com/mahmoud/cv-studio/internal/types"
)

// maxBodySize caps request bodies. A CV document is small; anything bigger is
// a mistake.
const maxBodySize = 2 << 20

// handleGetCV returns the current document
func (s *Server) handleGetCV(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleReplaceCV swaps the whole document for the request body
func (s *Server) handleReplaceCV(w http.ResponseWriter, r *http.Request) {
	var cv types.CVData
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&cv); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.store.Replace(&cv)
	s.events.Emit("cv_replaced", map[string]any{"name": cv.Basics.Name})
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// updateFieldRequest is the body of PATCH /cv/field.
type updateFieldRequest struct {
	Path  []string `json:"path"`
	Value string   `json:"value"`
}

// handleUpdateField applies a single path-addressed field update
func (s *Server) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	var req updateFieldRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Path) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "path is required")
		return
	}

	if err := s.store.UpdateField(req.Path, req.Value); err != nil {
		var pathErr *store.PathError
		if errors.As(err, &pathErr) {
			s.errorResponse(w, http.StatusBadRequest, pathErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to update field")
		return
	}

	s.events.Emit("cv_field_updated", map[string]any{"path": strings.Join(req.Path, ".")})
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleImport replaces the document with a validated bulk JSON import.
// Malformed JSON is a 400, a well-formed document with the wrong shape is a
// 422; in both cases the current document is untouched.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	cv, err := s.importer.Import(body)
	if err != nil {
		var parseErr *importer.ParseError
		if errors.As(err, &parseErr) {
			s.errorResponse(w, http.StatusBadRequest, "invalid format")
			return
		}
		var validationErr *importer.ValidationError
		if errors.As(err, &validationErr) {
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "invalid CV data format",
				"fields": validationErr.Fields,
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "import failed")
		return
	}

	s.events.Emit("cv_imported", map[string]any{
		"work_entries": len(cv.Work),
		"skill_groups": len(cv.Skills),
	})
	s.jsonResponse(w, http.StatusOK, cv)
}

// handleScore scores the current document
func (s *Server) handleScore(w http.ResponseWriter, _ *http.Request) {
	result := scoring.Score(s.store.Snapshot())
	s.events.Emit("cv_scored", map[string]any{"score": result.Score})
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"score":    result.Score,
		"label":    types.ScoreLabel(result.Score),
		"feedback": result.Feedback,
	})
}

// handlePreview renders the current document as themed HTML
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.requestTheme(w, r)
	if !ok {
		return
	}

	html, err := rendering.Render(s.store.Snapshot(), theme)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// handleThemes lists available themes with their ATS notes
func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, rendering.Themes())
}

// requestTheme resolves the theme query parameter, falling back to the
// configured default. On an unknown theme it writes a 400 and returns false.
func (s *Server) requestTheme(w http.ResponseWriter, r *http.Request) (rendering.Theme, bool) {
	name := r.URL.Query().Get("theme")
	if name == "" {
		return s.defaultTheme, true
	}
	theme, err := rendering.ParseTheme(name)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return theme, true
}
