package domain

// Business validation constants
const (
	MinDurationMinutes = 15
	SlotStepMinutes    = 30 // шаг генерации кандидатов внутри интервала
	MaxNotesLength     = 500
	MaxAddOnsPerCard   = 20
	MaxTitleLength     = 120
)

// DefaultCurrency валюта всех цен (минорные единицы)
const DefaultCurrency = "CAD"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
