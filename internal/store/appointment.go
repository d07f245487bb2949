package store

import (
	"context"
	"fmt"
	"strings"

	"clinic-booking-api/internal/model"
)

// booking fields that must be present and non-blank
var requiredFields = []string{"doctor", "fullName", "email"}

func validate(fields map[string]any) error {
	var missing []string
	for _, k := range requiredFields {
		if blank(fields[k]) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func blank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case fmt.Stringer:
		return strings.TrimSpace(x.String()) == ""
	}
	return false
}

// nextID hands out creation time in unix millis, bumped past the last
// id when two bookings land in the same millisecond. Caller holds mu.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) CreateAppointment(ctx context.Context, fields map[string]any) (int64, error) {
	if err := validate(fields); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := model.Appointment{
		ID:        s.nextID(),
		Fields:    model.BookingFields(fields),
		Status:    model.StatusConfirmed,
		CreatedAt: s.now().UTC(),
	}
	s.appts = append(s.appts, a)

	s.log.Info(ctx, "appointment created", "id", a.ID, "doctor", fmt.Sprint(a.Fields["doctor"]))
	s.publish(Change{Type: ChangeNew, Appointment: &a})
	return a.ID, nil
}

// ListAppointments returns every appointment in booking order.
func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Appointment, len(s.appts))
	copy(out, s.appts)
	return out, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.appts = append(s.appts[:i], s.appts[i+1:]...)

	s.log.Info(ctx, "appointment deleted", "id", id)
	s.publish(Change{Type: ChangeDeleted, AppointmentID: id})
	return nil
}

// ClearAppointments drops everything and reports how many were removed.
func (s *Store) ClearAppointments(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.appts)
	s.appts = nil

	s.log.Info(ctx, "appointments cleared", "count", n)
	s.publish(Change{Type: ChangeCleared, DeletedCount: &n})
	return n, nil
}

// UpdateAppointmentStatus overwrites the status with whatever the
// caller sent; the value is not checked against a fixed set.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.appts[i].Status = status

	s.log.Info(ctx, "appointment status updated", "id", id, "status", status)
	s.publish(Change{Type: ChangeStatusUpdated, AppointmentID: id, Status: status})
	return nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appts)
}

func (s *Store) indexOf(id int64) int {
	for i := range s.appts {
		if s.appts[i].ID == id {
			return i
		}
	}
	return -1
}
