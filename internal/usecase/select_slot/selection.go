package select_slot

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// applySlotToggle применяет переключение слота к текущему выбору.
// Правила в порядке применения:
//  1. Повторный клик по выбранному слоту усекает выбор на его позиции:
//     сам слот и всё, что выбрано после него, снимается. Всегда успех.
//  2. Пустой выбор начинается с кандидата. Всегда успех.
//  3. Кандидат обязан быть строгим преемником последнего выбранного
//     слота в порядке каталога, иначе ErrNonContiguousSelection.
//  4. Новый размер выбора обязан укладываться в лимит часов тарифа,
//     иначе ErrHourCapExceeded.
//
// При ошибке выбор остаётся без изменений.
func applySlotToggle(
	current []domain.TimeSlotLabel,
	candidate domain.TimeSlotLabel,
	catalog domain.SlotCatalog,
	policy domain.RolePolicy,
) ([]domain.TimeSlotLabel, error) {
	// 1. Снятие выбора: усечение вперёд
	for i, slot := range current {
		if slot == candidate {
			return append([]domain.TimeSlotLabel(nil), current[:i]...), nil
		}
	}

	// 2. Первый слот выбора
	if len(current) == 0 {
		return []domain.TimeSlotLabel{candidate}, nil
	}

	// 3. Только соседний следующий слот
	last := current[len(current)-1]
	if !catalog.IsSuccessor(last, candidate) {
		return nil, ErrNonContiguousSelection
	}

	// 4. Лимит часов тарифа
	if !policy.AllowsHours(len(current) + 1) {
		return nil, ErrHourCapExceeded
	}

	result := make([]domain.TimeSlotLabel, 0, len(current)+1)
	result = append(result, current...)
	result = append(result, candidate)
	return result, nil
}
