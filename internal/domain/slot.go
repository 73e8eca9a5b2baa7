package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeSlotLabel represents one bookable time range as the UI shows it,
// e.g. "09:00 - 10:00". Labels are drawn from an ordered SlotCatalog;
// catalog order defines adjacency. A booking may also carry a legacy
// merged label spanning several catalog slots ("14:00 - 16:00").
type TimeSlotLabel string

// Start returns the left half of the label ("09:00").
func (l TimeSlotLabel) Start() string {
	start, _, _ := strings.Cut(string(l), RangeSeparator)
	return start
}

// End returns the right half of the label ("10:00").
func (l TimeSlotLabel) End() string {
	_, end, _ := strings.Cut(string(l), RangeSeparator)
	return end
}

// Valid reports whether the label has the "HH:MM - HH:MM" shape with a
// start strictly before the end.
func (l TimeSlotLabel) Valid() bool {
	start, end, ok := strings.Cut(string(l), RangeSeparator)
	if !ok {
		return false
	}
	startMin, err := parseClock(start)
	if err != nil {
		return false
	}
	endMin, err := parseClock(end)
	if err != nil {
		return false
	}
	return startMin < endMin
}

// String implements fmt.Stringer.
func (l TimeSlotLabel) String() string {
	return string(l)
}

// SlotCatalog is the fixed ordered list of bookable time labels for a day.
// Position in the catalog is significant: слот i+1 считается соседним к слоту i.
type SlotCatalog []TimeSlotLabel

// BuildCatalog генерирует каталог слотов с фиксированным шагом от времени
// открытия до времени закрытия. Слот, конец которого выходит за время
// закрытия, в каталог не попадает.
func BuildCatalog(openTime, closeTime string, slotMinutes int) (SlotCatalog, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}

	openMin, err := parseClock(openTime)
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q: %w", openTime, err)
	}
	closeMin, err := parseClock(closeTime)
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q: %w", closeTime, err)
	}
	if openMin >= closeMin {
		return nil, fmt.Errorf("open time %q must be before close time %q", openTime, closeTime)
	}

	catalog := make(SlotCatalog, 0, (closeMin-openMin)/slotMinutes)
	for cur := openMin; cur+slotMinutes <= closeMin; cur += slotMinutes {
		label := TimeSlotLabel(formatClock(cur) + RangeSeparator + formatClock(cur+slotMinutes))
		catalog = append(catalog, label)
	}

	if len(catalog) == 0 {
		return nil, fmt.Errorf("working window %s-%s is shorter than one slot", openTime, closeTime)
	}
	return catalog, nil
}

// IndexOf returns the position of the label in the catalog, or -1.
func (c SlotCatalog) IndexOf(label TimeSlotLabel) int {
	for i, slot := range c {
		if slot == label {
			return i
		}
	}
	return -1
}

// Contains reports whether the label belongs to the catalog.
func (c SlotCatalog) Contains(label TimeSlotLabel) bool {
	return c.IndexOf(label) >= 0
}

// IsSuccessor reports whether next immediately follows prev in catalog order.
func (c SlotCatalog) IsSuccessor(prev, next TimeSlotLabel) bool {
	prevIdx := c.IndexOf(prev)
	nextIdx := c.IndexOf(next)
	return prevIdx >= 0 && nextIdx == prevIdx+1
}

// IsContiguousRun reports whether the selection is a gap-free run of
// catalog slots in catalog order. The empty selection is a valid run.
func (c SlotCatalog) IsContiguousRun(selection []TimeSlotLabel) bool {
	for i, slot := range selection {
		idx := c.IndexOf(slot)
		if idx < 0 {
			return false
		}
		if i > 0 && idx != c.IndexOf(selection[i-1])+1 {
			return false
		}
	}
	return true
}

// DecomposeRange разворачивает legacy-метку диапазона обратно в слоты
// каталога: "14:00 - 16:00" -> ["14:00 - 15:00", "15:00 - 16:00"].
// Возвращает false, если диапазон не раскладывается в непрерывный отрезок каталога.
func (c SlotCatalog) DecomposeRange(label TimeSlotLabel) ([]TimeSlotLabel, bool) {
	if idx := c.IndexOf(label); idx >= 0 {
		return []TimeSlotLabel{label}, true
	}

	start := -1
	for i, slot := range c {
		if slot.Start() == label.Start() {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	for i := start; i < len(c); i++ {
		if c[i].End() == label.End() {
			run := make([]TimeSlotLabel, i-start+1)
			copy(run, c[start:i+1])
			return run, true
		}
	}
	return nil, false
}

// MergedLabel collapses a contiguous selection into the single label the
// store keeps: "[first.start] - [last.end]". A one-slot selection keeps its
// own label. Запись в этом формате исторически используется хранилищем
// для многослотовых бронирований.
func MergedLabel(selection []TimeSlotLabel) TimeSlotLabel {
	if len(selection) == 0 {
		return ""
	}
	if len(selection) == 1 {
		return selection[0]
	}
	first := selection[0]
	last := selection[len(selection)-1]
	return TimeSlotLabel(first.Start() + RangeSeparator + last.End())
}

// SelectionRange returns the displayed [first.start, last.end] range of a
// selection and the hour count. Hours equal the slot count, not the
// wall-clock difference: slots are fixed-width and contiguous by construction.
func SelectionRange(selection []TimeSlotLabel) (start, end string, hours int) {
	if len(selection) == 0 {
		return "", "", 0
	}
	return selection[0].Start(), selection[len(selection)-1].End(), len(selection)
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes since midnight back into "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
