package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Selection) == 0 {
		return fmt.Errorf("%w: select at least one time slot", ErrEmptySelection)
	}

	if len(req.RoomIDs) == 0 {
		return fmt.Errorf("%w: select at least one room", ErrEmptySelection)
	}

	if hasDuplicates(req.RoomIDs) {
		return fmt.Errorf("%w: room ids must be unique", ErrInvalidInput)
	}

	if req.Topic != nil && len(*req.Topic) > domain.MaxTopicLength {
		return fmt.Errorf("%w: topic is too long (max %d characters)", ErrInvalidInput, domain.MaxTopicLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d characters)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSelection проверяет выбор против каталога и политики тарифа
func validateSelection(req *Request, catalog domain.SlotCatalog, policy domain.RolePolicy) error {
	if !catalog.IsContiguousRun(req.Selection) {
		return fmt.Errorf("%w: selection is not a contiguous catalog run", ErrNonContiguousSelection)
	}

	if !policy.AllowsHours(len(req.Selection)) {
		return fmt.Errorf("%w: tier %s allows at most %d hours", ErrHourCapExceeded, policy.Tier, policy.MaxHours)
	}

	if !policy.AllowsRooms(len(req.RoomIDs)) {
		return fmt.Errorf("%w: tier %s allows at most %d rooms", ErrRoomCapExceeded, policy.Tier, policy.MaxRooms)
	}

	return nil
}

func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
