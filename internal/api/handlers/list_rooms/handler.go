package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем фильтры из query параметров
	req := &models.ListRoomsRequest{
		Search: r.URL.Query().Get("search"),
	}
	if roomType := r.URL.Query().Get("type"); roomType != "" {
		req.Type = &roomType
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms listed: count=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
