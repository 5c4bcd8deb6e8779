package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/google/uuid"
)

// maxUploadBytes caps ISF document uploads at 10 MB.
const maxUploadBytes = 10 << 20

// handleUpload stores one multipart file under the uploads directory and
// returns a FileRef for attaching to an ISF item. Stored names are generated;
// the client name survives only inside the returned ref.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, fmt.Errorf("invalid multipart upload: %w", domain.ErrValidation))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("missing file field: %w", domain.ErrValidation))
		return
	}
	defer file.Close()

	name := filepath.Base(header.Filename)
	if name == "" || name == "." || strings.ContainsAny(name, "/\\") {
		writeError(w, fmt.Errorf("invalid file name: %w", domain.ErrValidation))
		return
	}

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		writeError(w, err)
		return
	}

	stored := uuid.New().String() + filepath.Ext(name)
	path := filepath.Join(s.uploadsDir, stored)
	dst, err := os.Create(path)
	if err != nil {
		writeError(w, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domain.FileRef{
		Name: name,
		Path: path,
		URL:  "/uploads/" + stored,
	})
}
