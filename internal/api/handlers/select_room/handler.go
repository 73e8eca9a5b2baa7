package select_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	selectRoom "github.com/m04kA/SMC-RoomBookingService/internal/usecase/select_room"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomCapExceeded    = "превышен лимит комнат для вашего тарифа"
	msgRoomNotFound       = "комната не найдена"
	msgInvalidRoomID      = "некорректный ID комнаты"
)

type Handler struct {
	useCase SelectRoomUseCase
	logger  Logger
}

func NewHandler(useCase SelectRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selection/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /selection/rooms - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tier, _ := middleware.GetUserTier(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, tier))
	if err != nil {
		switch {
		case errors.Is(err, selectRoom.ErrRoomCapExceeded):
			h.logger.Warn("POST /selection/rooms - Room cap exceeded: user_id=%s, tier=%s", userID, tier)
			handlers.RespondConflict(w, msgRoomCapExceeded)

		case errors.Is(err, selectRoom.ErrRoomNotFound):
			h.logger.Warn("POST /selection/rooms - Room not found: user_id=%s, room_id=%s", userID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, selectRoom.ErrInvalidInput):
			h.logger.Warn("POST /selection/rooms - Invalid room ID: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		default:
			h.logger.Error("POST /selection/rooms - Failed to toggle room: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
