package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mahmoud/cv-studio/internal/db"
)

// requireDB answers 503 when snapshot persistence is not configured.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "snapshot persistence is not configured")
		return false
	}
	return true
}

// snapshotID parses the {id} path segment.
func (s *Server) snapshotID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid snapshot id")
		return uuid.Nil, false
	}
	return id, true
}

// handleSaveSnapshot stores the current document under a name
func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := s.db.SaveCV(r.Context(), name, s.store.Snapshot())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save snapshot")
		return
	}

	s.events.Emit("snapshot_saved", map[string]any{"name": name})
	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"id":   id.String(),
		"name": name,
	})
}

// handleListSnapshots lists stored snapshots, newest first
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	infos, err := s.db.ListCVs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}
	s.jsonResponse(w, http.StatusOK, infos)
}

// handleGetSnapshot returns one snapshot with its content
func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := s.snapshotID(w, r)
	if !ok {
		return
	}

	snap, err := s.db.GetCV(r.Context(), id)
	if errors.Is(err, db.ErrSnapshotNotFound) {
		s.errorResponse(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load snapshot")
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

// handleLoadSnapshot replaces the current document with a stored snapshot
func (s *Server) handleLoadSnapshot(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := s.snapshotID(w, r)
	if !ok {
		return
	}

	snap, err := s.db.GetCV(r.Context(), id)
	if errors.Is(err, db.ErrSnapshotNotFound) {
		s.errorResponse(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load snapshot")
		return
	}

	s.store.Replace(snap.CV)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleDeleteSnapshot removes a stored snapshot
func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := s.snapshotID(w, r)
	if !ok {
		return
	}

	err := s.db.DeleteCV(r.Context(), id)
	if errors.Is(err, db.ErrSnapshotNotFound) {
		s.errorResponse(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete snapshot")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
