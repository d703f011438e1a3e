package scheduling

import (
	"fmt"
	"time"
)

// SlotConfig describes a clinical day: opening hours, an excluded break
// interval and the booking granularity. EndHour and BreakEndHour are
// exclusive.
type SlotConfig struct {
	StartHour          int
	EndHour            int
	BreakStartHour     int
	BreakEndHour       int
	GranularityMinutes int
}

// DefaultSlotConfig is the clinic's standard day: 9 AM to 9 PM in
// 15-minute steps with a 1 PM to 2 PM lunch break.
func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		StartHour:          9,
		EndHour:            21,
		BreakStartHour:     13,
		BreakEndHour:       14,
		GranularityMinutes: 15,
	}
}

// Slot is a bookable time of day. Value is the canonical "HH:MM" 24-hour
// form used everywhere in the API; Label is the 12-hour display form.
type Slot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GenerateSlots expands a SlotConfig into the ordered slot grid for one
// day. The output is strictly ascending by (hour, minute). Minutes step
// from 0 within each hour, so a granularity that does not divide 60
// simply ends the hour early rather than spilling across the boundary.
func GenerateSlots(cfg SlotConfig) []Slot {
	if cfg.GranularityMinutes <= 0 || cfg.StartHour >= cfg.EndHour {
		return nil
	}

	var slots []Slot
	for hour := cfg.StartHour; hour < cfg.EndHour; hour++ {
		if hour >= cfg.BreakStartHour && hour < cfg.BreakEndHour {
			continue
		}
		for minute := 0; minute < 60; minute += cfg.GranularityMinutes {
			slots = append(slots, Slot{
				Value: fmt.Sprintf("%02d:%02d", hour, minute),
				Label: displayLabel(hour, minute),
			})
		}
	}
	return slots
}

func displayLabel(hour, minute int) string {
	displayHour := hour
	if hour > 12 {
		displayHour = hour - 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, ampm)
}

// ParseDate validates a calendar-date string ("YYYY-MM-DD"). The parsed
// value is discarded; dates are carried and compared as strings.
func ParseDate(date string) error {
	if date == "" {
		return invalidField("appointmentDate", "required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return invalidField("appointmentDate", "must be a calendar date in YYYY-MM-DD form")
	}
	return nil
}

// ValidateSlotTime checks that a time string is one of the grid points
// produced by cfg.
func ValidateSlotTime(cfg SlotConfig, value string) error {
	if value == "" {
		return invalidField("appointmentTime", "required")
	}
	for _, s := range GenerateSlots(cfg) {
		if s.Value == value {
			return nil
		}
	}
	return invalidField("appointmentTime", "not a bookable slot")
}
