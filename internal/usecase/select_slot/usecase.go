package select_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type UseCase struct {
	catalog  domain.SlotCatalog
	policies domain.PolicyTable
	logger   Logger
}

func NewUseCase(catalog domain.SlotCatalog, policies domain.PolicyTable, logger Logger) *UseCase {
	return &UseCase{
		catalog:  catalog,
		policies: policies,
		logger:   logger,
	}
}

// Execute переключает слот в текущем выборе пользователя.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Кандидат обязан существовать в каталоге
	if !uc.catalog.Contains(req.Candidate) {
		uc.logger.Warn("UseCase.Execute - unknown slot: userID=%s, slot=%s", req.UserID, req.Candidate)
		return nil, fmt.Errorf("%w: slot %q is not in the catalog", ErrUnknownSlot, req.Candidate)
	}

	// 2. Текущий выбор обязан быть непрерывной цепочкой слотов каталога
	if !uc.catalog.IsContiguousRun(req.Current) {
		uc.logger.Warn("UseCase.Execute - corrupted selection: userID=%s, selection=%v", req.UserID, req.Current)
		return nil, fmt.Errorf("%w: current selection is not a contiguous catalog run", ErrInvalidInput)
	}

	// 3. Политика тарифа (неизвестный тариф откатывается на guest)
	policy := uc.policies.PolicyFor(req.Tier)

	// 4. Применяем переключение
	selection, err := applySlotToggle(req.Current, req.Candidate, uc.catalog, policy)
	if err != nil {
		uc.logger.Info("UseCase.Execute - toggle rejected: userID=%s, slot=%s, err=%v", req.UserID, req.Candidate, err)
		return nil, err
	}

	uc.logger.Info("UseCase.Execute - selection updated: userID=%s, slots=%d", req.UserID, len(selection))

	start, end, hours := domain.SelectionRange(selection)
	return &Response{
		Selection:  selection,
		RangeStart: start,
		RangeEnd:   end,
		Hours:      hours,
	}, nil
}
