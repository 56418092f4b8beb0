package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/domain/project"
)

// Server wires the REST API over the domain services.
type Server struct {
	projects  *project.Service
	papers    *paper.Service
	compounds *compound.Service
	activity  *activity.Service
	maxUpload int64
	logger    *slog.Logger
}

// NewServer creates the HTTP router with middleware and all routes.
func NewServer(
	projects *project.Service,
	papers *paper.Service,
	compounds *compound.Service,
	activitySvc *activity.Service,
	maxUpload int64,
	logger *slog.Logger,
) *chi.Mux {
	srv := &Server{
		projects:  projects,
		papers:    papers,
		compounds: compounds,
		activity:  activitySvc,
		maxUpload: maxUpload,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", srv.handleListProjects)
			r.Post("/", srv.handleCreateProject)
			r.Get("/active", srv.handleActiveProject)
			r.Get("/active/fields", srv.handleActiveFields)
			r.Get("/{id}", srv.handleGetProject)
			r.Put("/{id}", srv.handleUpdateProject)
			r.Delete("/{id}", srv.handleDeleteProject)
			r.Post("/{id}/activate", srv.handleActivateProject)
		})

		r.Route("/pdfs", func(r chi.Router) {
			r.Get("/", srv.handleListPapers)
			r.Post("/", srv.handleUploadPaper)
			r.Get("/search", srv.handleSearchPapers)
			r.Get("/{id}", srv.handleGetPaperBinary)
			r.Put("/{id}", srv.handleUpdatePaper)
			r.Delete("/{id}", srv.handleDeletePaper)
		})

		r.Route("/compounds", func(r chi.Router) {
			r.Post("/", srv.handleCreateCompound)
			r.Get("/{pdfId}", srv.handleListCompounds)
			r.Put("/{id}", srv.handleUpdateCompound)
			r.Delete("/{id}", srv.handleDeleteCompound)
		})

		r.Get("/activity", srv.handleActivity)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"healthy": true})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	opts := activity.ListOptions{Limit: 50}
	if limit, ok := queryInt(r, "limit"); ok {
		opts.Limit = limit
	}
	if offset, ok := queryInt(r, "offset"); ok {
		opts.Offset = offset
	}
	if entity := r.URL.Query().Get("entity"); entity != "" {
		opts.Entity = entity
	}

	entries, err := s.activity.Recent(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
