package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/docstruct/internal/config"
	"github.com/kirillkom/docstruct/internal/core/domain"
	"github.com/kirillkom/docstruct/internal/core/ports"
	"github.com/kirillkom/docstruct/internal/observability/metrics"
)

const serviceName = "api"

type Router struct {
	processUC ports.DocumentProcessor
	archiveUC ports.RecordArchive
	metrics   *metrics.ServerMetrics
	cfg       config.Config
	logger    *slog.Logger
}

func NewRouter(
	processUC ports.DocumentProcessor,
	archiveUC ports.RecordArchive,
	serverMetrics *metrics.ServerMetrics,
	cfg config.Config,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		processUC: processUC,
		archiveUC: archiveUC,
		metrics:   serverMetrics,
		cfg:       cfg,
		logger:    logger,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.Handle("/metrics", rt.metrics.Handler())
	mux.HandleFunc("/v1/documents/process", rt.processDocument)
	mux.HandleFunc("/v1/records", rt.listRecords)
	mux.HandleFunc("/v1/records/", rt.deleteRecord)

	var handler http.Handler = mux
	handler = rt.metrics.Middleware(serviceName, handler)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) processDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "uploaded file exceeds the size limit"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading uploaded file: " + err.Error()})
		return
	}

	opts := ports.ProcessOptions{
		Template: strings.TrimSpace(r.FormValue("template")),
		Fields:   splitFields(r.FormValue("fields")),
	}

	result, err := rt.processUC.Process(r.Context(), fileHeader.Filename, content, opts)
	if err != nil {
		rt.metrics.RecordDocument(serviceName, "", "error", 0, time.Since(start))
		writeError(w, err)
		return
	}
	rt.metrics.RecordDocument(serviceName, fileHeader.Header.Get("Content-Type"), "ok", len(result.Warnings), time.Since(start))

	response := processResponse{ProcessingResult: result}
	status := http.StatusOK
	if parseBool(r.FormValue("store")) {
		id, err := rt.archiveUC.Save(r.Context(), result, fileHeader.Filename)
		if err != nil {
			rt.metrics.RecordStoreOperation(serviceName, "save", "error")
			writeError(w, err)
			return
		}
		rt.metrics.RecordStoreOperation(serviceName, "save", "ok")
		response.RecordID = id
		status = http.StatusCreated
	}

	writeJSON(w, status, response)
}

func (rt *Router) listRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	records, err := rt.archiveUC.List(r.Context())
	if err != nil {
		rt.metrics.RecordStoreOperation(serviceName, "list", "error")
		writeError(w, err)
		return
	}
	rt.metrics.RecordStoreOperation(serviceName, "list", "ok")
	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (rt *Router) deleteRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/records/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "record id is required"})
		return
	}

	if err := rt.archiveUC.Delete(r.Context(), id); err != nil {
		rt.metrics.RecordStoreOperation(serviceName, "delete", "error")
		writeError(w, err)
		return
	}
	rt.metrics.RecordStoreOperation(serviceName, "delete", "ok")
	writeJSON(w, http.StatusNoContent, nil)
}

type processResponse struct {
	*domain.ProcessingResult
	RecordID string `json:"record_id,omitempty"`
}

func splitFields(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
