package transport

import (
	"fmt"
	"net/http"

	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/repository"
)

func (s *Server) handleCreateCompound(w http.ResponseWriter, r *http.Request) {
	var req compound.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", repository.ErrInvalidInput))
		return
	}

	c, err := s.compounds.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": c.ID})
}

func (s *Server) handleListCompounds(w http.ResponseWriter, r *http.Request) {
	pdfID, err := pathID(r, "pdfId")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid paper id", repository.ErrInvalidInput))
		return
	}

	compounds, err := s.compounds.ListForPaper(r.Context(), pdfID)
	if err != nil {
		writeError(w, err)
		return
	}
	if compounds == nil {
		compounds = []compound.Compound{}
	}
	writeJSON(w, http.StatusOK, compounds)
}

func (s *Server) handleUpdateCompound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid compound id", repository.ErrInvalidInput))
		return
	}

	var req compound.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", repository.ErrInvalidInput))
		return
	}

	if err := s.compounds.Update(r.Context(), id, req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Compound updated successfully"})
}

func (s *Server) handleDeleteCompound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid compound id", repository.ErrInvalidInput))
		return
	}

	if err := s.compounds.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Compound deleted"})
}
