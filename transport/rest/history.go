package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictaptoe-client/internal/entity"
	"github.com/rocketscienceinc/tictaptoe-client/internal/service"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type historyService interface {
	Recent(ctx context.Context, limit int) ([]*entity.Record, error)
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type historyResponse struct {
	Scoreboard *entity.Scoreboard `json:"scoreboard"`
	Recent     []*entity.Record   `json:"recent"`
}

type historyHandler struct {
	logger  *slog.Logger
	history historyService
}

func NewHistoryHandler(logger *slog.Logger, history historyService) http.Handler {
	return &historyHandler{
		logger:  logger.With("handler", "history"),
		history: history,
	}
}

func (that *historyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryLimit {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}

		limit = parsed
	}

	scoreboard, err := that.history.Scoreboard(r.Context())
	if err != nil {
		that.fail(w, log, err)
		return
	}

	recent, err := that.history.Recent(r.Context(), limit)
	if err != nil {
		that.fail(w, log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(historyResponse{Scoreboard: scoreboard, Recent: recent}); err != nil {
		log.Error("failed to encode history", "error", err)
	}
}

func (that *historyHandler) fail(w http.ResponseWriter, log *slog.Logger, err error) {
	if errors.Is(err, service.ErrHistoryDisabled) {
		http.Error(w, "History is disabled", http.StatusServiceUnavailable)
		return
	}

	log.Error("failed to read history", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
