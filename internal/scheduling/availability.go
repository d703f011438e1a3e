package scheduling

import (
	"context"

	"hospital-appointment-server/internal/models"
)

// OccupyingStatuses are the appointment statuses that count toward slot
// exclusivity. Completed appointments free their slot, matching the
// doctor-facing workflow ("time slot is now available for booking again"),
// as do cancelled ones.
var OccupyingStatuses = []models.AppointmentStatus{
	models.StatusScheduled,
	models.StatusInProgress,
}

// Availability derives per-day occupancy for a doctor from the appointment
// store. Its reads are advisory UI hints: the booking coordinator is the
// only authority on whether a slot can actually be claimed.
type Availability struct {
	store Store
	cfg   SlotConfig
}

// NewAvailability creates an availability index over the given store.
func NewAvailability(store Store, cfg SlotConfig) *Availability {
	return &Availability{store: store, cfg: cfg}
}

// OccupiedSlots returns the occupied slot times for a doctor on a date,
// ascending.
func (a *Availability) OccupiedSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	if doctorID == "" {
		return nil, invalidField("doctorId", "required")
	}
	if err := ParseDate(date); err != nil {
		return nil, err
	}
	return a.store.OccupiedTimes(ctx, doctorID, date)
}

// IsAvailable reports whether a specific slot is free right now. The
// answer can be stale by the time a booking lands; callers must treat it
// as a hint only.
func (a *Availability) IsAvailable(ctx context.Context, doctorID, date, slotTime string) (bool, error) {
	if err := ValidateSlotTime(a.cfg, slotTime); err != nil {
		return false, err
	}
	occupied, err := a.OccupiedSlots(ctx, doctorID, date)
	if err != nil {
		return false, err
	}
	for _, t := range occupied {
		if t == slotTime {
			return false, nil
		}
	}
	return true, nil
}

// DaySlot is one grid entry with its current occupancy.
type DaySlot struct {
	Slot
	Available bool `json:"available"`
}

// DaySlots returns the full slot grid for a doctor's day with per-slot
// availability, in display order.
func (a *Availability) DaySlots(ctx context.Context, doctorID, date string) ([]DaySlot, error) {
	occupied, err := a.OccupiedSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(occupied))
	for _, t := range occupied {
		taken[t] = true
	}

	grid := GenerateSlots(a.cfg)
	day := make([]DaySlot, 0, len(grid))
	for _, s := range grid {
		day = append(day, DaySlot{Slot: s, Available: !taken[s.Value]})
	}
	return day, nil
}
