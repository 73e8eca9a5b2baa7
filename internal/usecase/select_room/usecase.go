package select_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomstore "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

type UseCase struct {
	rooms    RoomProvider
	policies domain.PolicyTable
	logger   Logger
}

func NewUseCase(rooms RoomProvider, policies domain.PolicyTable, logger Logger) *UseCase {
	return &UseCase{
		rooms:    rooms,
		policies: policies,
		logger:   logger,
	}
}

// Execute переключает комнату в текущем выборе пользователя.
// Снятие выбранной комнаты успешно всегда; добавление ограничено
// лимитом комнат тарифа.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}

	// 2. Снятие выбора: всегда успех, без обращения к хранилищу
	for i, id := range req.Current {
		if id == req.RoomID {
			result := make([]string, 0, len(req.Current)-1)
			result = append(result, req.Current[:i]...)
			result = append(result, req.Current[i+1:]...)

			uc.logger.Info("UseCase.Execute - room deselected: userID=%s, roomID=%s", req.UserID, req.RoomID)
			return &Response{RoomIDs: result, Selected: false}, nil
		}
	}

	// 3. Комната обязана существовать
	if _, err := uc.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomstore.ErrRoomNotFound) {
			uc.logger.Warn("UseCase.Execute - room not found: userID=%s, roomID=%s", req.UserID, req.RoomID)
			return nil, fmt.Errorf("%w: id %s", ErrRoomNotFound, req.RoomID)
		}
		uc.logger.Error("UseCase.Execute - failed to get room: roomID=%s, err=%v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Лимит комнат тарифа (неизвестный тариф откатывается на guest)
	policy := uc.policies.PolicyFor(req.Tier)
	if !policy.AllowsRooms(len(req.Current) + 1) {
		uc.logger.Info("UseCase.Execute - room cap reached: userID=%s, tier=%s, rooms=%d", req.UserID, req.Tier, len(req.Current))
		return nil, fmt.Errorf("%w: tier %s allows at most %d rooms", ErrRoomCapExceeded, policy.Tier, policy.MaxRooms)
	}

	result := make([]string, 0, len(req.Current)+1)
	result = append(result, req.Current...)
	result = append(result, req.RoomID)

	uc.logger.Info("UseCase.Execute - room selected: userID=%s, roomID=%s, rooms=%d", req.UserID, req.RoomID, len(result))
	return &Response{RoomIDs: result, Selected: true}, nil
}
