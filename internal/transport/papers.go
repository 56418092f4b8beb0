package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/repository"
)

func (s *Server) handleListPapers(w http.ResponseWriter, r *http.Request) {
	papers, err := s.papers.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if papers == nil {
		papers = []paper.Paper{}
	}
	writeJSON(w, http.StatusOK, papers)
}

// handleUploadPaper accepts a multipart form with a "pdf" file field
// and a "bibtexData" JSON string field.
func (s *Server) handleUploadPaper(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, fmt.Errorf("%w: malformed multipart upload", repository.ErrInvalidInput))
		return
	}

	file, _, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, fmt.Errorf("%w: no PDF file uploaded", repository.ErrInvalidInput))
		return
	}
	defer file.Close()

	var meta paper.Metadata
	if err := json.Unmarshal([]byte(r.FormValue("bibtexData")), &meta); err != nil {
		writeError(w, fmt.Errorf("%w: malformed bibtexData", repository.ErrInvalidInput))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, fmt.Errorf("reading uploaded file: %w", err))
		return
	}

	p, err := s.papers.Create(r.Context(), meta, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": p.ID})
}

func (s *Server) handleSearchPapers(w http.ResponseWriter, r *http.Request) {
	opts := paper.SearchOptions{Limit: 50}
	if limit, ok := queryInt(r, "limit"); ok {
		opts.Limit = limit
	}
	if offset, ok := queryInt(r, "offset"); ok {
		opts.Offset = offset
	}

	papers, err := s.papers.Search(r.Context(), r.URL.Query().Get("q"), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	if papers == nil {
		papers = []paper.Paper{}
	}
	writeJSON(w, http.StatusOK, papers)
}

// handleGetPaperBinary streams the stored PDF bytes, framed for inline
// viewing or download per the "inline" query flag. Caching is
// suppressed so repeated fetches always reflect current stored bytes.
func (s *Server) handleGetPaperBinary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid paper id", repository.ErrInvalidInput))
		return
	}

	data, err := s.papers.GetBinary(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	disposition := "attachment"
	if r.URL.Query().Get("inline") == "true" {
		disposition = "inline"
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`%s; filename="document-%d.pdf"`, disposition, id))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	_, _ = w.Write(data)
}

func (s *Server) handleUpdatePaper(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid paper id", repository.ErrInvalidInput))
		return
	}

	var meta paper.Metadata
	if err := decodeJSON(r, &meta); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", repository.ErrInvalidInput))
		return
	}

	if err := s.papers.Update(r.Context(), id, meta); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Paper updated successfully"})
}

func (s *Server) handleDeletePaper(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid paper id", repository.ErrInvalidInput))
		return
	}

	if err := s.papers.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "PDF deleted"})
}
