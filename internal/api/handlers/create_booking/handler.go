package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEmptySelection     = "выберите хотя бы один слот и одну комнату"
	msgNonContiguous      = "выбирайте только последовательные временные слоты"
	msgHourCapExceeded    = "превышен лимит часов для вашего тарифа"
	msgRoomCapExceeded    = "превышен лимит комнат для вашего тарифа"
	msgRoomUnavailable    = "одна из выбранных комнат недоступна"
	msgInvalidBooking     = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tier, _ := middleware.GetUserTier(r.Context())

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID, tier)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: user_id=%s: %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrEmptySelection):
			h.logger.Warn("POST /bookings - Empty selection: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createBooking.ErrNonContiguousSelection):
			h.logger.Warn("POST /bookings - Non-contiguous selection: user_id=%s", userID)
			handlers.RespondConflict(w, msgNonContiguous)

		case errors.Is(err, createBooking.ErrHourCapExceeded):
			h.logger.Warn("POST /bookings - Hour cap exceeded: user_id=%s, tier=%s", userID, tier)
			handlers.RespondConflict(w, msgHourCapExceeded)

		case errors.Is(err, createBooking.ErrRoomCapExceeded):
			h.logger.Warn("POST /bookings - Room cap exceeded: user_id=%s, tier=%s", userID, tier)
			handlers.RespondConflict(w, msgRoomCapExceeded)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: user_id=%s: %v", userID, err)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid booking data: user_id=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, user_id=%s", result.Booking.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
