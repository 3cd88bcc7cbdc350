package snapshot

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclp/internal/telemetry/tracing"
	"github.com/2beens/gzclp/pkg"
)

type snapshotService interface {
	Export(ctx context.Context) (*Snapshot, error)
	Import(ctx context.Context, snap Snapshot) error
}

type Handler struct {
	service snapshotService
}

func NewHandler(service snapshotService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.snapshot.export")
	defer span.End()

	snap, err := h.service.Export(ctx)
	if err != nil {
		log.Errorf("snapshot export: %s", err)
		http.Error(w, "failed to export snapshot", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(snap)
	if err != nil {
		log.Errorf("marshal snapshot: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.snapshot.import")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
		http.Error(w, "add json content type", http.StatusBadRequest)
		return
	}

	var snap Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		log.Errorf("decode snapshot: %s", err)
		http.Error(w, "invalid snapshot", http.StatusBadRequest)
		return
	}

	if err := h.service.Import(ctx, snap); err != nil {
		log.Errorf("snapshot import: %s", err)
		http.Error(w, "failed to import snapshot", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"imported": true}`)
}
