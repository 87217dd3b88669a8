package server

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/mahmoud/cv-studio/internal/export"
	"github.com/mahmoud/cv-studio/internal/rendering"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// handlePreviewText returns the ATS plain-text rendition of the document
func (s *Server) handlePreviewText(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.requestTheme(w, r)
	if !ok {
		return
	}

	text, err := export.PlainText(s.store.Snapshot(), theme)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to extract preview text")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// handleExportPDF prints the themed document to PDF
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.requestTheme(w, r)
	if !ok {
		return
	}

	cv := s.store.Snapshot()
	pdf, err := export.PDF(r.Context(), cv, theme)
	if err != nil {
		s.exportError(w, err)
		return
	}

	s.events.Emit("cv_exported", map[string]any{"format": "pdf", "theme": string(theme)})
	s.sendAttachment(w, contentTypePDF, export.Filename(cv.Basics.Name, "pdf"), pdf)
}

// handleExportDOCX writes the document as DOCX
func (s *Server) handleExportDOCX(w http.ResponseWriter, _ *http.Request) {
	cv := s.store.Snapshot()

	var buf bytes.Buffer
	if err := export.DOCX(cv, &buf); err != nil {
		s.exportError(w, err)
		return
	}

	s.events.Emit("cv_exported", map[string]any{"format": "docx"})
	s.sendAttachment(w, contentTypeDOCX, export.Filename(cv.Basics.Name, "docx"), buf.Bytes())
}

// handleExportBundle produces PDF and DOCX concurrently and zips them
func (s *Server) handleExportBundle(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.requestTheme(w, r)
	if !ok {
		return
	}

	cv := s.store.Snapshot()

	var (
		pdf  []byte
		docx bytes.Buffer
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		pdf, err = export.PDF(ctx, cv, theme)
		return err
	})
	g.Go(func() error {
		return export.DOCX(cv, &docx)
	})
	if err := g.Wait(); err != nil {
		s.exportError(w, err)
		return
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct {
		name string
		data []byte
	}{
		{export.Filename(cv.Basics.Name, "pdf"), pdf},
		{export.Filename(cv.Basics.Name, "docx"), docx.Bytes()},
	} {
		f, err := zw.Create(entry.name)
		if err == nil {
			_, err = f.Write(entry.data)
		}
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to build bundle")
			return
		}
	}
	if err := zw.Close(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to build bundle")
		return
	}

	s.events.Emit("cv_exported", map[string]any{"format": "bundle", "theme": string(theme)})
	s.sendAttachment(w, "application/zip", export.Filename(cv.Basics.Name, "zip"), buf.Bytes())
}

// exportError maps export failures to HTTP statuses.
func (s *Server) exportError(w http.ResponseWriter, err error) {
	var themeErr *rendering.UnknownThemeError
	if errors.As(err, &themeErr) {
		s.errorResponse(w, http.StatusBadRequest, themeErr.Error())
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

// sendAttachment writes binary content with a download filename.
func (s *Server) sendAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
