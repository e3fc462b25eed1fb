package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	serversync "github.com/flightbase/flightbase/internal/server/sync"
	"github.com/flightbase/flightbase/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// UsernameKey ключ для хранения username в контексте
	UsernameKey contextKey = "username"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger      *slog.Logger
	coordinator *serversync.Coordinator
	validate    *validator.Validate
	now         func() time.Time
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, coordinator *serversync.Coordinator) *SyncHandler {
	return &SyncHandler{
		logger:      logger,
		coordinator: coordinator,
		validate:    validator.New(),
		now:         time.Now,
	}
}

// HandleSync обрабатывает GET и POST запросы для синхронизации
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// user_id установлен AuthMiddleware; отсутствие означает что запрос
	// прошел мимо цепочки middleware
	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user_id not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGetSync(w, r)
	case http.MethodPost:
		h.handlePostSync(w, r, ctx, userID)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleGetSync обрабатывает GET /api/v1/sync
// Возвращает текущее серверное время как опорную точку для коррекции
// клиентских часов
func (h *SyncHandler) handleGetSync(w http.ResponseWriter, _ *http.Request) {
	resp := api.ServerTimeResponse{ServerTime: h.now().UTC()}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// handlePostSync обрабатывает POST /api/v1/sync
// Принимает батч отложенных мутаций и возвращает поэлементный результат
func (h *SyncHandler) handlePostSync(w http.ResponseWriter, r *http.Request, ctx context.Context, userID string) {
	var req api.SyncRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode sync request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("malformed sync request", "error", err)
		http.Error(w, "Invalid sync request", http.StatusBadRequest)
		return
	}

	// Тело должно ссылаться на аутентифицированного пользователя
	if req.UserID != userID {
		h.logger.Warn("sync request user_id mismatch",
			"expected", userID, "got", req.UserID)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	h.logger.Info("sync batch received", "user_id", userID, "changes", len(req.Changes))

	resp := h.coordinator.SyncBatch(ctx, userID, req.Changes)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
