package select_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	selectSlot "github.com/m04kA/SMC-RoomBookingService/internal/usecase/select_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNonContiguous      = "выбирайте только последовательные временные слоты"
	msgHourCapExceeded    = "превышен лимит часов для вашего тарифа"
	msgUnknownSlot        = "временной слот отсутствует в каталоге"
	msgInvalidSelection   = "некорректный текущий выбор"
)

type Handler struct {
	useCase SelectSlotUseCase
	logger  Logger
}

func NewHandler(useCase SelectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selection/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /selection/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tier, _ := middleware.GetUserTier(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, tier))
	if err != nil {
		switch {
		case errors.Is(err, selectSlot.ErrNonContiguousSelection):
			h.logger.Warn("POST /selection/slots - Non-contiguous selection: user_id=%s, candidate=%s", userID, req.Candidate)
			handlers.RespondConflict(w, msgNonContiguous)

		case errors.Is(err, selectSlot.ErrHourCapExceeded):
			h.logger.Warn("POST /selection/slots - Hour cap exceeded: user_id=%s, tier=%s", userID, tier)
			handlers.RespondConflict(w, msgHourCapExceeded)

		case errors.Is(err, selectSlot.ErrUnknownSlot):
			h.logger.Warn("POST /selection/slots - Unknown slot: user_id=%s, candidate=%s", userID, req.Candidate)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, selectSlot.ErrInvalidInput):
			h.logger.Warn("POST /selection/slots - Invalid selection: user_id=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("POST /selection/slots - Failed to toggle slot: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
