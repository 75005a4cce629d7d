package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	assembly "arx-bim/internal/assembly/domain"

	assemblyapp "arx-bim/internal/assembly/application"
	"arx-bim/internal/assembly/interfaces"
	"arx-bim/internal/observability/metrics"
)

// Handler serves assembly endpoints.
type Handler struct {
	pipeline *assemblyapp.Pipeline
	repo     assembly.ResultRepository
}

// NewHandler constructs a Handler.
func NewHandler(pipeline *assemblyapp.Pipeline, repo assembly.ResultRepository) (*Handler, error) {
	if pipeline == nil {
		return nil, errors.New("assembly handler: nil pipeline")
	}
	if repo == nil {
		return nil, errors.New("assembly handler: nil repository")
	}
	return &Handler{pipeline: pipeline, repo: repo}, nil
}

// ServeHTTP routes assembly requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/v1/assemblies" {
		switch r.Method {
		case http.MethodPost:
			h.handleAssemble(w, r)
		case http.MethodGet:
			h.handleList(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	if !strings.HasPrefix(r.URL.Path, "/api/v1/assemblies/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/assemblies/")
	parts := strings.Split(path, "/")
	if len(parts) < 1 || parts[0] == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	assemblyID := parts[0]

	if len(parts) == 1 && r.Method == http.MethodGet {
		h.handleGet(w, r, assemblyID)
		return
	}
	if len(parts) == 2 && parts[1] == "export" && r.Method == http.MethodGet {
		h.handleExport(w, r, assemblyID)
		return
	}

	w.WriteHeader(http.StatusNotFound)
}

func (h *Handler) handleAssemble(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Records []*assemblyapp.SymbolRecord `json:"records"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	result := h.pipeline.Run(r.Context(), req.Records)
	metrics.ObserveAssemblyOutput(len(result.Elements), len(result.Conflicts), len(result.Relationships))

	if err := h.repo.Save(r.Context(), result); err != nil {
		http.Error(w, "failed to store result", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !result.Success {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	_ = json.NewEncoder(w).Encode(result)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	results, err := h.repo.List(r.Context(), 100)
	if err != nil {
		http.Error(w, "failed to list results", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request, assemblyID string) {
	result, err := h.repo.FindByID(r.Context(), assemblyID)
	if errors.Is(err, assembly.ErrNotFound) {
		http.Error(w, "assembly not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to load result", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request, assemblyID string) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	result, err := h.repo.FindByID(r.Context(), assemblyID)
	if errors.Is(err, assembly.ErrNotFound) {
		http.Error(w, "assembly not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to load result", http.StatusInternalServerError)
		return
	}

	started := time.Now()
	var payload []byte
	var contentType, filename string
	switch format {
	case "xlsx":
		payload, err = interfaces.BuildResultXLSX(result)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = assemblyID + ".xlsx"
	case "pdf":
		payload, err = interfaces.BuildResultPDF(result)
		contentType = "application/pdf"
		filename = assemblyID + ".pdf"
	default:
		http.Error(w, "format must be xlsx or pdf", http.StatusBadRequest)
		return
	}
	if err != nil {
		metrics.ObserveExport(format, metrics.ResultError, time.Since(started))
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}
	metrics.ObserveExport(format, metrics.ResultSuccess, time.Since(started))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(payload)
}
