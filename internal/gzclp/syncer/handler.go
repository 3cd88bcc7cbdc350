package syncer

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclp/internal/gzclp/progression"
	"github.com/2beens/gzclp/internal/telemetry/tracing"
	"github.com/2beens/gzclp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=syncer_test

type syncService interface {
	TriggerSync()
	CancelSync() bool
	Running() bool
	LastState(ctx context.Context) (*progression.SyncState, error)
}

type Handler struct {
	syncer syncService
}

func NewHandler(syncer syncService) *Handler {
	return &Handler{syncer: syncer}
}

type TriggerResponse struct {
	Triggered bool `json:"triggered"`
}

type StatusResponse struct {
	Running bool                   `json:"running"`
	State   *progression.SyncState `json:"state"`
}

type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

// HandleTrigger kicks off a sync cycle and returns right away. An
// in-flight cycle gets cancelled and replaced, never stacked.
func (h *Handler) HandleTrigger(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.trigger")
	defer span.End()

	h.syncer.TriggerSync()
	writeJSON(w, TriggerResponse{Triggered: true}, http.StatusAccepted)
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.status")
	defer span.End()

	state, err := h.syncer.LastState(ctx)
	if err != nil {
		log.Errorf("sync status, get state: %s", err)
		http.Error(w, "failed to get sync status", http.StatusInternalServerError)
		return
	}

	writeJSON(w, StatusResponse{
		Running: h.syncer.Running(),
		State:   state,
	}, http.StatusOK)
}

func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.cancel")
	defer span.End()

	writeJSON(w, CancelResponse{Cancelled: h.syncer.CancelSync()}, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, payload interface{}, status int) {
	resp, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, status)
}
