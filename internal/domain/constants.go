package domain

// Default slot catalog values (used when the config omits them)
const (
	DefaultOpenTime    = "09:00"
	DefaultCloseTime   = "17:00"
	DefaultSlotMinutes = 60
)

// Business validation constants
const (
	MinRoomCapacity = 1
	MaxRoomCapacity = 500
	MaxNotesLength  = 500
	MaxTopicLength  = 200
)

// DefaultTopic подставляется в сетку расписания, когда у бронирования нет темы
const DefaultTopic = "Booked Session"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RangeSeparator разделитель половинок метки слота ("09:00 - 10:00")
const RangeSeparator = " - "
