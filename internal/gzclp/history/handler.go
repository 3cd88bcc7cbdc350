package history

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclp/internal/telemetry/tracing"
	"github.com/2beens/gzclp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=history_test

type historyLister interface {
	List(ctx context.Context, params ListParams) ([]Entry, error)
}

type Handler struct {
	repo historyLister
}

func NewHandler(repo historyLister) *Handler {
	return &Handler{repo: repo}
}

type ListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// HandleList returns the progression history, ascending by workout
// date. Optional query params: key (progression key filter) and limit.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	params := ListParams{
		ProgressionKey: r.URL.Query().Get("key"),
	}
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	entries, err := h.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list history: %s", err)
		http.Error(w, "failed to list history", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(ListResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("marshal history response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
}
