package transport

import (
	"fmt"
	"net/http"

	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/paperbase/paperbase/internal/repository"
)

type projectRequest struct {
	Name   string          `json:"name"`
	Fields []project.Field `json:"fields"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	result, err := s.projects.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if result.Projects == nil {
		result.Projects = []project.Summary{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", repository.ErrInvalidInput))
		return
	}

	proj, err := s.projects.Create(r.Context(), project.CreateRequest{
		Name:   req.Name,
		Fields: req.Fields,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":      proj.ID,
		"message": "Project created successfully",
	})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid project id", repository.ErrInvalidInput))
		return
	}

	proj, err := s.projects.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid project id", repository.ErrInvalidInput))
		return
	}

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", repository.ErrInvalidInput))
		return
	}

	if err := s.projects.Update(r.Context(), id, req.Name, req.Fields); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project updated successfully"})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid project id", repository.ErrInvalidInput))
		return
	}

	if err := s.projects.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func (s *Server) handleActivateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid project id", repository.ErrInvalidInput))
		return
	}

	if err := s.projects.Activate(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project activated successfully"})
}

func (s *Server) handleActiveProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.projects.Active(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"project": proj})
}

func (s *Server) handleActiveFields(w http.ResponseWriter, r *http.Request) {
	fields, err := s.projects.ActiveFields(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if fields == nil {
		fields = []project.Field{}
	}
	writeJSON(w, http.StatusOK, fields)
}
