package scheduling

import (
	"context"
	"fmt"
	"sync"

	"hospital-appointment-server/internal/models"
)

// BookingRequest carries everything needed to claim a slot.
type BookingRequest struct {
	DoctorID     string
	DepartmentID string
	PatientID    string
	Date         string
	Time         string
	Reason       string
}

// Coordinator is the single authoritative mutator of booking state. It
// serializes booking attempts per (doctor, date, time) triple and performs
// the check-and-reserve through the store in one atomic unit, so two
// concurrent requests can never both claim the same slot. Conflicts fail
// fast with ErrSlotTaken; nothing is queued or retried here.
type Coordinator struct {
	store Store
	cfg   SlotConfig

	mu    sync.Mutex
	locks map[string]*slotLock
}

// slotLock serializes booking attempts for one triple. The ref count
// tracks holders and waiters so the entry can be evicted once the last
// one releases; the map stays bounded by in-flight contention, not by
// every triple ever attempted.
type slotLock struct {
	sync.Mutex
	refs int
}

// NewCoordinator creates a booking coordinator over the given store.
func NewCoordinator(store Store, cfg SlotConfig) *Coordinator {
	return &Coordinator{
		store: store,
		cfg:   cfg,
		locks: make(map[string]*slotLock),
	}
}

// Book validates the request, then claims the slot. Exactly one
// appointment row is created on success; a conflict writes nothing.
func (c *Coordinator) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}

	key := slotKey(req.DoctorID, req.Date, req.Time)
	lock := c.acquire(key)
	defer c.release(key, lock)

	appt := &models.Appointment{
		DoctorID:        req.DoctorID,
		DepartmentID:    req.DepartmentID,
		PatientID:       req.PatientID,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
		Status:          models.StatusScheduled,
		Reason:          req.Reason,
	}
	if err := c.store.CreateScheduled(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (c *Coordinator) validate(req BookingRequest) error {
	if req.DoctorID == "" {
		return invalidField("doctorId", "required")
	}
	if req.DepartmentID == "" {
		return invalidField("departmentId", "required")
	}
	if req.PatientID == "" {
		return invalidField("patientId", "required")
	}
	if err := ParseDate(req.Date); err != nil {
		return err
	}
	return ValidateSlotTime(c.cfg, req.Time)
}

// acquire takes the lock for a triple, creating its entry on first use.
// Locks are per triple, so contention is bounded to clients fighting over
// literally the same slot.
func (c *Coordinator) acquire(key string) *slotLock {
	c.mu.Lock()
	lock, ok := c.locks[key]
	if !ok {
		lock = &slotLock{}
		c.locks[key] = lock
	}
	lock.refs++
	c.mu.Unlock()

	lock.Lock()
	return lock
}

// release unlocks a triple's lock and evicts the entry once nobody holds
// or waits on it.
func (c *Coordinator) release(key string, lock *slotLock) {
	lock.Unlock()

	c.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(c.locks, key)
	}
	c.mu.Unlock()
}

func slotKey(doctorID, date, slotTime string) string {
	return fmt.Sprintf("%s|%s|%s", doctorID, date, slotTime)
}
