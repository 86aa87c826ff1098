package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/carson-networks/report-server/internal/logging"
)

const pingTimeout = 2 * time.Second

// pinger reports whether the database is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db pinger
}

func NewHandler(db pinger) Handler {
	return Handler{db: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	stop := logData.AddTiming("pingMs")
	err := h.db.Ping(ctx)
	stop()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("status: database unreachable: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
